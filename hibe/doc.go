/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package hibe implements the Lewko-Waters unbounded hierarchical
// identity-based encryption scheme in its prime-order dual pairing
// vector space (DPVS) translation over an asymmetric bilinear group.
//
// A root authority runs Setup to obtain a PublicParams/MasterKey pair.
// KeyGen issues a SecretKey for a hierarchical identity at any level;
// Delegate extends a SecretKey at level l to any identity one level
// deeper without involving the master key. Encrypt targets a message
// expressed as a bn256.GT element to a hierarchy of arbitrary depth,
// and Decrypt recovers it with a key for the same hierarchy; a key of
// a different level is rejected with an error. There is
// no authenticated-decryption check: a key for a mismatched hierarchy
// "succeeds" numerically, returning a uniformly distributed element.
package hibe

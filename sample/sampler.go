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

package sample

import "math/big"

// Sampler is the common interface of samplers that produce integers
// from some probability distribution over big.Int. The data and hibe
// packages depend only on this interface, never on a concrete sampler,
// so that random and deterministic sources can be swapped in freely.
type Sampler interface {
	Sample() (*big.Int, error)
}

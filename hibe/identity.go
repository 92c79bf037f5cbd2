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

package hibe

import (
	"fmt"
	"math/big"

	"github.com/fentec-project/bn256"
)

// splitIdentity interprets identity as level concatenated labelLen-byte
// labels and reduces each, big-endian, modulo the group order. Every
// label in one call uses the same fixed byte length; variable-length
// labels within a single hierarchy are out of scope.
func splitIdentity(identity []byte, labelLen, level int) ([]*big.Int, error) {
	if level < 1 {
		return nil, fmt.Errorf("level must be at least 1")
	}
	if labelLen <= 0 {
		return nil, fmt.Errorf("label length must be positive")
	}
	if len(identity) != labelLen*level {
		return nil, fmt.Errorf("identity buffer length %d does not match label length %d times level %d",
			len(identity), labelLen, level)
	}

	ids := make([]*big.Int, level)
	for i := 0; i < level; i++ {
		label := identity[i*labelLen : (i+1)*labelLen]
		ids[i] = new(big.Int).Mod(new(big.Int).SetBytes(label), bn256.Order)
	}
	return ids, nil
}

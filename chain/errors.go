/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package chain

import "fmt"

// ErrNotEnoughElements matches any *NotEnoughElementsError when used
// with errors.Is.
var ErrNotEnoughElements = &NotEnoughElementsError{}

// NotEnoughElementsError is returned when a lookup asks for a depth the
// history does not reach.
type NotEnoughElementsError struct {
	Have  int
	Asked int
}

func (e *NotEnoughElementsError) Error() string {
	return fmt.Sprintf("chain only has %d elements, requested %d", e.Have, e.Asked)
}

func (e *NotEnoughElementsError) Is(target error) bool {
	return target == ErrNotEnoughElements
}

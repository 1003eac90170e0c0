// Copyright 2026 by Harald Albrecht
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package propres

// UnresolvedExpressionError is returned when none of the names in an
// expression resolves and the expression lacks a default.
type UnresolvedExpressionError struct {
	Expression string // the complete unresolved ${...} expression
}

func (e *UnresolvedExpressionError) Error() string {
	return "failed to resolve expression: " + e.Expression
}

// IncompleteExpressionError is returned when the input ends in the middle of
// an expression name.
type IncompleteExpressionError struct {
	Partial string // output resolved so far
}

func (e *IncompleteExpressionError) Error() string {
	return "incomplete expression: " + e.Partial
}

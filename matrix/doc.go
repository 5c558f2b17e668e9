// Package matrix defines a polymorphic integer matrix contract and two
// concrete variants that share behavior through explicit delegation.
//
// What & Why:
//
//	Matrix is an eight-operation contract: Class, Destroy, Rows, Cols, At,
//	Set, Transpose and Multiply. Transpose and Multiply are implemented once,
//	in DefaultTranspose and DefaultMultiply, purely in terms of the four
//	storage primitives (the Accessor interface). A variant supplies storage
//	and delegates the rest, overriding only what it improves:
//
//	  Dense     - flat row-major buffer; borrows both default behaviors.
//	  SmartMul  - Dense storage; overrides Multiply with a cache-aware
//	              algorithm that transposes the multiplier once and then
//	              multiplies row by row.
//
//	Other packages can add variants the same way (see mmapmatrix).
//
// Ownership & errors:
//
//	The caller constructs every matrix, sizes every destination, and
//	destroys each matrix exactly once. Failures are reported as one of five
//	sentinel errors (ErrInvalidState, ErrInvalidArgument, ErrOutOfMemory,
//	ErrOutOfRange, ErrDimensionMismatch); KindOf classifies wrapped errors.
//	A Transpose or Multiply that fails midway leaves the destination
//	partially written.
//
// Complexity:
//
//	Rows, Cols, At and Set run in O(1). Transpose is O(m·n); Multiply is
//	O(m·n·p) for both variants.
package matrix

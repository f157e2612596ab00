package bits

const signMask = Word(1) << signBit

// Sign returns the two's-complement sign bit (bit 63) of source: 1 or 0.
func Sign(source Word) Word {
	return GetBits(source, signBit, signBit)
}

// AddOverflow reports whether op1 + op2 overflows when both are read as signed
// 64-bit integers. That happens when the operands share a sign and the sum
// does not.
func AddOverflow(op1, op2 Word) bool {
	sum := op1 + op2
	return (sum^op1)&(sum^op2)&signMask != 0
}

// SubOverflow reports whether op2 - op1 overflows when both are read as signed
// 64-bit integers. Note the operand order: op1 is subtracted from op2.
func SubOverflow(op1, op2 Word) bool {
	diff := op2 - op1
	// Operands of differing sign, and the result took the subtrahend's sign.
	return (op2^op1)&(diff^op2)&signMask != 0
}

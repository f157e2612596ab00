package bits

// CopyBits copies length bits of source, starting at bit srcLow, into dest
// starting at bit dstLow, and returns the modified dest.
//
// Both [srcLow, srcLow+length-1] and [dstLow, dstLow+length-1] must be valid
// ranges, otherwise dest is returned unchanged. A length below 1 never yields a
// valid range.
func CopyBits(source, dest Word, srcLow, dstLow, length int) Word {
	srcHigh := srcLow + length - 1
	dstHigh := dstLow + length - 1
	if !ValidRange(srcLow, srcHigh) || !ValidRange(dstLow, dstHigh) {
		return dest
	}

	field := GetBits(source, srcLow, srcHigh)
	return ClearBits(dest, dstLow, dstHigh) | field<<uint(dstLow)
}

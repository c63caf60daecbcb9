package blocks

// Block kind ids. 1-6 match spec.md §8's worked scenarios exactly; the rest
// follow original_source/src/blocks.rs and blocks/*.rs's own numbering
// (60000s for documentation blocks, 64000s Integer, 67000s Float/
// FloatVector3, 68000s String) so a reader who knows the original
// recognizes the scheme immediately.
const (
	IDStart        = 1
	IDConsolePrint = 2
	IDStaticString = 3
	IDStringAdd    = 4
	IDIntegerAdd   = 5
	IDIntegerToStr = 6

	IDComment = 60000

	IDIntegerSubtract = 64002
	IDIntegerMultiply = 64003
	IDIntegerDivide   = 64004

	IDCreateFloatVector3 = 67000
	IDFloatAdd           = 67001
	IDFloatSubtract      = 67002
	IDFloatMultiply      = 67003
	IDFloatDivide        = 67004
	IDFloatToStr         = 67005
	IDSplitFloatVector3  = 67009

	IDStringLength      = 68002
	IDStringTrim        = 68003
	IDStringToLowercase = 68004
	IDStringToUppercase = 68005
	IDStringInsert      = 68006
)

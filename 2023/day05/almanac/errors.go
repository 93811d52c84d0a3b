package almanac

import "errors"

var (
	ErrParse               = errors.New("almanac: parse error")
	ErrMalformedMapping    = errors.New("almanac: malformed mapping")
	ErrBrokenChain         = errors.New("almanac: broken map chain")
	ErrInvalidChangeovers  = errors.New("almanac: invalid changeover table")
	ErrNotInvertible       = errors.New("almanac: changeover table is not invertible")
	ErrStraddlesBreakpoint = errors.New("almanac: range straddles a changeover")
	ErrNegativeSeed        = errors.New("almanac: negative seed")
	ErrNoSeeds             = errors.New("almanac: no seeds")
	ErrOddSeedRanges       = errors.New("almanac: seed ranges need start/size pairs")
)

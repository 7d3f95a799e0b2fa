package riichi

import "errors"

var (
	ErrInvalidTile    = errors.New("invalid tile")
	ErrInvalidHand    = errors.New("invalid hand shape")
	ErrInvalidMeld    = errors.New("invalid meld")
	ErrInvalidContext = errors.New("invalid scoring context")
	ErrInvalidVerdict = errors.New("invalid verdict message")
)

package lbytes

import (
	"bytes"
	"fmt"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
	Vector       struct {
		X float32 `json:"x"`
		Y float32 `json:"y"`
		Z float32 `json:"z"`
	}
)

const (
	SizeVector = 12
)

func (r Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", r.X, r.Y, r.Z)
}

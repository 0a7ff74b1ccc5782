package main

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v2"

	"github.com/calebcase/b76"
	"github.com/calebcase/b76/args"
	"github.com/calebcase/b76/fixed"
	"github.com/calebcase/b76/selector"
)

// Error is the class of command errors.
var Error = errs.Class("b76 cmd")

// RequestFile is a request written with human readable decimals.
type RequestFile struct {
	Operation     string `yaml:"operation"`
	ExpirySeconds uint32 `yaml:"expiry_seconds"`
	Exponent      int8   `yaml:"exponent"`
	Discount      string `yaml:"discount"`
	Volatility    string `yaml:"volatility"`
	Forward       string `yaml:"forward"`
	Strike        string `yaml:"strike"`
}

// Arguments converts the decimals to raw fields.
func (rf *RequestFile) Arguments() (a *args.Arguments, err error) {
	a = &args.Arguments{
		ExpirySec: rf.ExpirySeconds,
		Exponent:  rf.Exponent,
	}

	fields := []struct {
		name string
		text string
		dst  **big.Int
	}{
		{"discount", rf.Discount, &a.Discount},
		{"volatility", rf.Volatility, &a.Volatility},
		{"forward", rf.Forward, &a.Forward},
		{"strike", rf.Strike, &a.Strike},
	}

	for _, f := range fields {
		text := f.text
		if text == "" {
			text = "0"
		}

		*f.dst, err = fixed.Parse(text, rf.Exponent)
		if err != nil {
			return nil, Error.New("%s: %v", f.name, err)
		}
	}

	return a, nil
}

// parseFile builds a request from a YAML request file.
func parseFile(data []byte) (req []byte, op selector.Operation, err error) {
	rf := &RequestFile{}

	err = yaml.UnmarshalStrict(data, rf)
	if err != nil {
		return nil, op, Error.Wrap(err)
	}

	op, ok := selector.Operations.Lookup(rf.Operation)
	if !ok {
		return nil, op, Error.New("unknown operation %q", rf.Operation)
	}

	a, err := rf.Arguments()
	if err != nil {
		return nil, op, err
	}

	req, err = b76.Request(op, a)
	if err != nil {
		return nil, op, Error.Wrap(err)
	}

	return req, op, nil
}

// parseHex decodes a hex request. A 0x prefix and surrounding whitespace are
// ignored.
func parseHex(text string) (req []byte, err error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "0x")

	req, err = hex.DecodeString(text)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return req, nil
}

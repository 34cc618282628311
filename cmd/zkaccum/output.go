package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/privacy-scaling-explorations/zk-kit-sub001/fieldhash"
	"github.com/privacy-scaling-explorations/zk-kit-sub001/proofcodec"
)

func parseElements(args []string) ([]fieldhash.Element, error) {
	es := make([]fieldhash.Element, len(args))
	for i, arg := range args {
		e, err := fieldhash.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		es[i] = e
	}
	return es, nil
}

// newCodec returns the proof codec for the configured encoding.
func newCodec() (proofcodec.Codec, error) {
	dec := proofcodec.NewDeterministicDecOpts()
	dec.MaxArrayElements = config.CBORMaxArrayElements
	return proofcodec.NewCodec(
		proofcodec.WithEncoding(proofcodec.Encoding(config.Encoding)),
		proofcodec.WithDecOptions(dec))
}

// writeProof writes proof in the configured encoding. CBOR is written as hex.
func writeProof(w io.Writer, proof any) error {
	codec, err := newCodec()
	if err != nil {
		return err
	}
	data, err := codec.Marshal(proof)
	if err != nil {
		return err
	}
	if codec.Encoding() == proofcodec.EncodingCBOR {
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// readProof reads a proof written by writeProof from filename, "-" for stdin,
// and returns it in the codec's encoding.
func readProof(stdin io.Reader, filename string) ([]byte, error) {
	var raw []byte
	var err error
	if filename == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(filename)
	}
	if err != nil {
		return nil, err
	}

	if config.Encoding == string(proofcodec.EncodingCBOR) {
		data, err := hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", proofcodec.ErrDecode, err)
		}
		return data, nil
	}
	return raw, nil
}

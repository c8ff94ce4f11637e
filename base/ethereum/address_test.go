package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestParsePrivateKey(t *testing.T) {
	req := require.New(t)

	key, pub, err := GenerateKey()
	req.NoError(err)
	encoded := hexutil.Encode(crypto.FromECDSA(key))

	for _, in := range []string{encoded, encoded[2:], " " + encoded + "\n"} {
		parsed, err := ParsePrivateKey(in)
		req.NoError(err)
		req.Equal(crypto.PubkeyToAddress(*pub), PubkeyToAddress(parsed))
	}

	_, err = ParsePrivateKey("0xnothex")
	req.Error(err)
}

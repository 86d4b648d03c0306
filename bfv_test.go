package bfv

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/lattiref/bfv/utils/bignum"
	"github.com/lattiref/bfv/utils/sampling"
)

var flagParamString = flag.String("params", "", "specify the test cryptographic parameters as a JSON string. Overrides the default test parameters.")

// testSeed seeds every deterministic test context.
const testSeed = 42

var testParams = []ParametersLiteral{
	{LogN: 4, Q: 1 << 28, T: 1 << 8, P: new(big.Int).Lsh(big.NewInt(1), 56)},
}

func GetTestName(opname string, p Parameters) string {
	return fmt.Sprintf("%s/LogN=%d/logQ=%d/logP=%d/logT=%d",
		opname,
		p.LogN(),
		int(math.Round(p.LogQ())),
		int(math.Round(p.LogP())),
		int(math.Round(p.LogT())))
}

type testContext struct {
	params    Parameters
	prng      sampling.PRNG
	encoder   *Encoder
	kgen      *KeyGenerator
	sk        *SecretKey
	pk        *PublicKey
	rlk       *RelinearizationKey
	encryptor *Encryptor
	decryptor *Decryptor
	evaluator *Evaluator
}

func genTestContext(params Parameters, seed uint64) (tc *testContext, err error) {

	tc = &testContext{params: params}

	tc.prng = sampling.NewSeededPRNG(seed)
	tc.encoder = NewEncoder(params)
	tc.kgen = NewKeyGenerator(params, tc.prng)
	tc.sk, tc.pk = tc.kgen.GenKeyPairNew()

	if params.P() != nil {
		if tc.rlk, err = tc.kgen.GenRelinearizationKeyNew(tc.sk); err != nil {
			return nil, err
		}
	}

	tc.encryptor = NewEncryptor(params, tc.pk, tc.prng)
	tc.decryptor = NewDecryptor(params, tc.sk)
	tc.evaluator = NewEvaluator(params, tc.rlk)

	return
}

// encryptNew encrypts the integer m under the test context's public key.
func (tc *testContext) encryptNew(m int64) *Ciphertext {
	return tc.encryptor.EncryptNew(tc.encoder.EncodeNew(m))
}

// decrypt decrypts ct and decodes its constant coefficient.
func (tc *testContext) decrypt(ct *Ciphertext) int64 {
	return int64(tc.encoder.DecodeUint(tc.decryptor.DecryptNew(ct)))
}

// randValue draws a plaintext value in [0, T) from the context's PRNG.
func (tc *testContext) randValue() int64 {
	return bignum.RandInt(tc.prng, tc.params.TBig()).Int64()
}

func TestBFV(t *testing.T) {

	paramsLiterals := testParams

	if *flagParamString != "" {
		var jsonParams ParametersLiteral
		if err := json.Unmarshal([]byte(*flagParamString), &jsonParams); err != nil {
			t.Fatal(err)
		}
		paramsLiterals = []ParametersLiteral{jsonParams}
	}

	for _, pl := range paramsLiterals {

		params, err := NewParametersFromLiteral(pl)
		require.NoError(t, err)

		tc, err := genTestContext(params, testSeed)
		require.NoError(t, err)

		for _, testSet := range []func(tc *testContext, t *testing.T){
			testEncryptDecrypt,
			testEvaluatorAddPlain,
			testEvaluatorMulPlain,
			testEvaluatorAdd,
			testEvaluatorSubNeg,
			testEvaluatorMul,
			testEvaluatorMulRelin,
			testDeterminism,
		} {
			testSet(tc, t)
		}
	}
}

// Fresh encryptions round-trip: Dec(Enc(m)) = m mod T on at least 99% of
// random messages and seeds.
func testEncryptDecrypt(tc *testContext, t *testing.T) {
	t.Run(GetTestName("EncryptDecrypt", tc.params), func(t *testing.T) {

		outcomes := make([]float64, 0, 200)
		for trial := 0; trial < 200; trial++ {

			tcT, err := genTestContext(tc.params, uint64(1000+trial))
			require.NoError(t, err)

			m := tcT.randValue()
			if tcT.decrypt(tcT.encryptNew(m)) == m {
				outcomes = append(outcomes, 1)
			} else {
				outcomes = append(outcomes, 0)
			}
		}

		rate, err := stats.Mean(outcomes)
		require.NoError(t, err)
		require.GreaterOrEqual(t, rate, 0.99)
	})
}

func testEvaluatorAddPlain(tc *testContext, t *testing.T) {
	t.Run(GetTestName("Evaluator/AddPlain", tc.params), func(t *testing.T) {

		T := tc.params.T()
		for trial := 0; trial < 8; trial++ {
			m0, m1 := tc.randValue(), tc.randValue()
			ct := tc.evaluator.AddPlainNew(tc.encryptNew(m0), tc.encoder.EncodeNew(m1))
			require.Equal(t, (m0+m1)%T, tc.decrypt(ct))
		}
	})

	t.Run(GetTestName("Evaluator/SubPlain", tc.params), func(t *testing.T) {

		T := tc.params.T()
		for trial := 0; trial < 8; trial++ {
			m0, m1 := tc.randValue(), tc.randValue()
			ct := tc.evaluator.SubPlainNew(tc.encryptNew(m0), tc.encoder.EncodeNew(m1))
			require.Equal(t, ((m0-m1)%T+T)%T, tc.decrypt(ct))
		}
	})
}

func testEvaluatorMulPlain(tc *testContext, t *testing.T) {
	t.Run(GetTestName("Evaluator/MulPlain", tc.params), func(t *testing.T) {

		T := tc.params.T()
		for trial := 0; trial < 8; trial++ {
			m0, m1 := tc.randValue(), tc.randValue()
			ct := tc.evaluator.MulPlainNew(tc.encryptNew(m0), tc.encoder.EncodeNew(m1))
			require.Equal(t, (m0*m1)%T, tc.decrypt(ct))
		}
	})
}

func testEvaluatorAdd(tc *testContext, t *testing.T) {
	t.Run(GetTestName("Evaluator/Add", tc.params), func(t *testing.T) {

		T := tc.params.T()
		for trial := 0; trial < 8; trial++ {
			m0, m1 := tc.randValue(), tc.randValue()
			ct, err := tc.evaluator.AddNew(tc.encryptNew(m0), tc.encryptNew(m1))
			require.NoError(t, err)
			require.Equal(t, (m0+m1)%T, tc.decrypt(ct))
		}
	})
}

func testEvaluatorSubNeg(tc *testContext, t *testing.T) {
	t.Run(GetTestName("Evaluator/Sub", tc.params), func(t *testing.T) {

		T := tc.params.T()
		for trial := 0; trial < 8; trial++ {
			m0, m1 := tc.randValue(), tc.randValue()
			ct, err := tc.evaluator.SubNew(tc.encryptNew(m0), tc.encryptNew(m1))
			require.NoError(t, err)
			require.Equal(t, ((m0-m1)%T+T)%T, tc.decrypt(ct))
		}
	})

	t.Run(GetTestName("Evaluator/Neg", tc.params), func(t *testing.T) {

		T := tc.params.T()
		m := tc.randValue()
		ct := tc.evaluator.NegNew(tc.encryptNew(m))
		require.Equal(t, ((-m)%T+T)%T, tc.decrypt(ct))
	})
}

// An un-relinearized product is a degree-2 ciphertext that still decrypts.
func testEvaluatorMul(tc *testContext, t *testing.T) {
	t.Run(GetTestName("Evaluator/Mul", tc.params), func(t *testing.T) {

		T := tc.params.T()
		for trial := 0; trial < 4; trial++ {
			m0, m1 := tc.randValue(), tc.randValue()
			ct, err := tc.evaluator.MulNew(tc.encryptNew(m0), tc.encryptNew(m1))
			require.NoError(t, err)
			require.Equal(t, 2, ct.Degree())
			require.Equal(t, (m0*m1)%T, tc.decrypt(ct))
		}
	})
}

func testEvaluatorMulRelin(tc *testContext, t *testing.T) {
	t.Run(GetTestName("Evaluator/MulRelin", tc.params), func(t *testing.T) {

		if tc.rlk == nil {
			t.Skip("parameters carry no auxiliary modulus P")
		}

		T := tc.params.T()
		for trial := 0; trial < 4; trial++ {
			m0, m1 := tc.randValue(), tc.randValue()
			ct, err := tc.evaluator.MulRelinNew(tc.encryptNew(m0), tc.encryptNew(m1))
			require.NoError(t, err)
			require.Equal(t, 1, ct.Degree())
			require.Equal(t, (m0*m1)%T, tc.decrypt(ct))
		}
	})
}

// With a fixed seed, key generation, encryption and evaluation are
// bit-for-bit reproducible.
func testDeterminism(tc *testContext, t *testing.T) {
	t.Run(GetTestName("Determinism", tc.params), func(t *testing.T) {

		tc0, err := genTestContext(tc.params, testSeed)
		require.NoError(t, err)
		tc1, err := genTestContext(tc.params, testSeed)
		require.NoError(t, err)

		require.True(t, tc0.sk.Value.Equal(tc1.sk.Value))
		require.True(t, tc0.pk.Value[0].Equal(tc1.pk.Value[0]))
		require.True(t, tc0.pk.Value[1].Equal(tc1.pk.Value[1]))

		if tc0.rlk != nil {
			require.True(t, tc0.rlk.Value[0].Equal(tc1.rlk.Value[0]))
			require.True(t, tc0.rlk.Value[1].Equal(tc1.rlk.Value[1]))
		}

		ct0 := tc0.encryptNew(73)
		ct1 := tc1.encryptNew(73)
		require.True(t, ct0.Equal(ct1))

		sum0, err := tc0.evaluator.AddNew(ct0, tc0.encryptNew(20))
		require.NoError(t, err)
		sum1, err := tc1.evaluator.AddNew(ct1, tc1.encryptNew(20))
		require.NoError(t, err)
		require.True(t, sum0.Equal(sum1))
	})
}

// The first concrete end-to-end scenario: additions and plaintext
// multiplications at LogN=4, Q=2^28, T=2^8.
func TestScenarioAdditive(t *testing.T) {

	params, err := NewParametersFromLiteral(ParametersLiteral{LogN: 4, Q: 1 << 28, T: 1 << 8})
	require.NoError(t, err)

	tc, err := genTestContext(params, testSeed)
	require.NoError(t, err)

	ct1 := tc.encryptNew(73)
	ct2 := tc.encryptNew(20)

	ct3 := tc.evaluator.AddPlainNew(ct1, tc.encoder.EncodeNew(7))
	require.Equal(t, int64(80), tc.decrypt(ct3))

	ct4 := tc.evaluator.MulPlainNew(ct2, tc.encoder.EncodeNew(5))
	require.Equal(t, int64(100), tc.decrypt(ct4))

	ct5, err := tc.evaluator.AddNew(ct3, ct4)
	require.NoError(t, err)
	require.Equal(t, int64(180), tc.decrypt(ct5))
}

// The second concrete end-to-end scenario: one relinearized multiplication at
// LogN=4, Q=2^28, T=2^8, P=Q^2.
func TestScenarioMulRelin(t *testing.T) {

	q := int64(1) << 28
	params, err := NewParametersFromLiteral(ParametersLiteral{
		LogN: 4,
		Q:    q,
		T:    1 << 8,
		P:    new(big.Int).Mul(big.NewInt(q), big.NewInt(q)),
	})
	require.NoError(t, err)

	tc, err := genTestContext(params, testSeed)
	require.NoError(t, err)

	ct1 := tc.encryptNew(73)
	ct2 := tc.encryptNew(20)

	ct, err := tc.evaluator.MulRelinNew(ct1, ct2)
	require.NoError(t, err)
	require.Equal(t, int64(73*20%256), tc.decrypt(ct))
}

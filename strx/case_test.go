package strx

import (
	"testing"

	"github.com/mazzegi/strbox/testx"
)

type properCaseTest struct {
	in    string
	lower bool
	exp   string
}

func TestProperCase(t *testing.T) {
	tests := []properCaseTest{
		{"hello world", false, "Hello World"},
		{"hELLO wORLD", false, "HELLO WORLD"},
		{"hELLO wORLD", true, "Hello World"},
		{"o'neil-smith", false, "O'Neil-Smith"},
		{"snake_case words", false, "Snake_case Words"},
		{"42 apples", false, "42 Apples"},
	}
	testx.RunTests(t, tests, func(tx *testx.Tx, test properCaseTest) {
		res, err := ProperCase(test.in, test.lower)
		tx.AssertNoErr(err)
		tx.AssertEqual(test.exp, res)
	})
}

func TestMock(t *testing.T) {
	tx := testx.NewTx(t)
	res, err := Mock("Hello World")
	tx.AssertNoErr(err)
	tx.AssertEqual("hElLo wOrLd", res)

	res, err = Mock("a")
	tx.AssertNoErr(err)
	tx.AssertEqual("a", res)
}

func TestEmptyInput(t *testing.T) {
	tx := testx.NewTx(t)
	_, err := ProperCase("", false)
	tx.AssertErrIs(err, ErrEmptyInput)
	_, err = Mock("")
	tx.AssertErrIs(err, ErrEmptyInput)
	_, err = Chunks("", 2)
	tx.AssertErrIs(err, ErrEmptyInput)
	_, err = Scramble("", nil)
	tx.AssertErrIs(err, ErrEmptyInput)
	_, err = Emojify("")
	tx.AssertErrIs(err, ErrEmptyInput)
	_, err = Abbreviate("")
	tx.AssertErrIs(err, ErrEmptyInput)
}

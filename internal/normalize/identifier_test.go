package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractID_StripsPunctuation(t *testing.T) {
	assert.Equal(t, "1234A", ContractID("12-34A"))
	assert.Equal(t, "1234A", ContractID(" 12 34/A "))
	assert.Equal(t, "1234A", ContractID("12.34.A"))
}

func TestContractID_PreservesCase(t *testing.T) {
	assert.Equal(t, "aB9", ContractID("a-B_9"))
}

func TestContractID_Empty(t *testing.T) {
	assert.Equal(t, "", ContractID(""))
	assert.Equal(t, "", ContractID("   "))
	assert.Equal(t, "", ContractID("--//--"))
}

func TestContractID_FoldsFullWidth(t *testing.T) {
	// Full-width digits pasted from spreadsheet cells.
	assert.Equal(t, "1234", ContractID("１２３４"))
	assert.Equal(t, "12A", ContractID("１２Ａ"))
}

func TestContractID_Idempotent(t *testing.T) {
	for _, raw := range []string{"12-34A", "abc 999", "계약#7", ""} {
		once := ContractID(raw)
		assert.Equal(t, once, ContractID(once))
	}
}

func TestContractID_EqualityIgnoresSeparators(t *testing.T) {
	assert.Equal(t, ContractID("12-34A"), ContractID("1234A"))
	assert.NotEqual(t, ContractID("1234a"), ContractID("1234A"))
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, "01012345678", PhoneDigits("010-1234-5678"))
	assert.Equal(t, "021234", PhoneDigits("(02) 1234"))
	assert.Equal(t, "", PhoneDigits("내선없음"))
}

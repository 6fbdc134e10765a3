package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalSide(t *testing.T) {
	assert.Equal(t, SideDebit, TypeAsset.NormalSide())
	assert.Equal(t, SideDebit, TypeExpense.NormalSide())
	assert.Equal(t, SideCredit, TypeLiability.NormalSide())
	assert.Equal(t, SideCredit, TypeEquity.NormalSide())
	assert.Equal(t, SideCredit, TypeIncome.NormalSide())
}

func TestAccountTypeValid(t *testing.T) {
	for _, typ := range []AccountType{TypeAsset, TypeLiability, TypeEquity, TypeIncome, TypeExpense} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, AccountType("REVENUE").Valid())
	assert.False(t, AccountType("").Valid())
}

func TestExpenseAccountForCategory(t *testing.T) {
	assert.Equal(t, CodeRentExpense, ExpenseAccountForCategory("rent"))
	assert.Equal(t, CodeSalaryExpense, ExpenseAccountForCategory("salaries"))
	assert.Equal(t, CodeMiscExpense, ExpenseAccountForCategory("something-unmapped"))
	assert.Equal(t, CodeMiscExpense, ExpenseAccountForCategory(""))
}

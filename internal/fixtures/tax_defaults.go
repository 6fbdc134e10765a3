package fixtures

import (
	"github.com/kazi-suite/ledger-backend-go/internal/config"
	"github.com/kazi-suite/ledger-backend-go/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// DefaultPAYEBrackets returns the Ugandan monthly PAYE bands. Lower bounds
// are exclusive, upper bounds inclusive; the last band is open-ended.
func DefaultPAYEBrackets() []tax.Bracket {
	return []tax.Bracket{
		{Lower: decimal.Zero, Upper: decimal.NewFromInt(235000), Rate: decimal.Zero},
		{Lower: decimal.NewFromInt(235000), Upper: decimal.NewFromInt(335000), Rate: decimal.RequireFromString("0.10")},
		{Lower: decimal.NewFromInt(335000), Upper: decimal.NewFromInt(410000), Rate: decimal.RequireFromString("0.20")},
		{Lower: decimal.NewFromInt(410000), Upper: decimal.NewFromInt(10000000), Rate: decimal.RequireFromString("0.30")},
		{Lower: decimal.NewFromInt(10000000), Upper: decimal.Zero, Rate: decimal.RequireFromString("0.40")},
	}
}

// TaxConfigFrom combines the environment-provided rates with the bracket
// table into the calculator's runtime configuration.
func TaxConfigFrom(cfg config.TaxConfig) tax.Config {
	return tax.Config{
		VATRate:          cfg.VATRate,
		PAYEBrackets:     DefaultPAYEBrackets(),
		NSSFEmployeeRate: cfg.NSSFEmployeeRate,
		NSSFEmployerRate: cfg.NSSFEmployerRate,
		CorporateRate:    cfg.CorporateRate,
	}
}

package ports

import "github.com/shopspring/decimal"

// Metrics recebe os eventos de negócio que viram métricas
type Metrics interface {
	ObserveCheckout(total decimal.Decimal, units int)
	ObserveAuth(event string, success bool)
}

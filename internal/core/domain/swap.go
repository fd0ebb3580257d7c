package domain

import "github.com/shopspring/decimal"

// PathQuote is one network-ranked strict-send path record.
type PathQuote struct {
	SourceAmount      decimal.Decimal
	DestinationAmount decimal.Decimal
	Path              []Asset
}

// SwapPath is the result of path finding for one (source, destination, amount)
// triple. Any change to those inputs requires a fresh SwapPath.
type SwapPath struct {
	SourceAsset          Asset           `json:"source_asset"`
	DestAsset            Asset           `json:"dest_asset"`
	SourceAmount         decimal.Decimal `json:"source_amount"`
	DestinationAmount    decimal.Decimal `json:"destination_amount"`
	DestinationAmountMin decimal.Decimal `json:"destination_amount_min"`
	ConversionRate       decimal.Decimal `json:"conversion_rate"`
	Path                 []Asset         `json:"path"`
	SlippagePercent      decimal.Decimal `json:"slippage_percent"`
}

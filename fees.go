package dmbc

// feeRatioSize is fixed(8) + numerator(8) + denominator(8).
const feeRatioSize = 24

// FeeRatio is a fee expressed as fixed + numerator/denominator, where
// the fraction is derived from a decimal literal by counting
// fractional digits (spec §4.1, §4.3).
type FeeRatio struct {
	Fixed       uint64
	Numerator   uint64
	Denominator uint64
}

// NewFeeRatio parses fraction (grammar D+ ('.' D*)?) and builds a FeeRatio.
func NewFeeRatio(fixed uint64, fraction string) (*FeeRatio, *Error) {
	num, den, err := parseDecimalRatio(fraction)
	if err != nil {
		return nil, err
	}
	return &FeeRatio{Fixed: fixed, Numerator: num, Denominator: den}, nil
}

func (f FeeRatio) encode() []byte {
	buf := make([]byte, 0, feeRatioSize)
	buf = appendU64(buf, f.Fixed)
	buf = appendU64(buf, f.Numerator)
	buf = appendU64(buf, f.Denominator)
	return buf
}

// feesSize is three inline FeeRatio values (spec §4.3).
const feesSize = feeRatioSize * 3

// Fees bundles the three fee schedules an asset carries: trade,
// exchange and transfer.
type Fees struct {
	Trade    FeeRatio
	Exchange FeeRatio
	Transfer FeeRatio
}

// NewFees parses all three fraction strings and builds a Fees value.
// Declaration order (trade, exchange, transfer) is also the on-wire
// order.
func NewFees(
	tradeFixed uint64, tradeFraction string,
	exchangeFixed uint64, exchangeFraction string,
	transferFixed uint64, transferFraction string,
) (*Fees, *Error) {
	trade, err := NewFeeRatio(tradeFixed, tradeFraction)
	if err != nil {
		return nil, err
	}
	exchange, err := NewFeeRatio(exchangeFixed, exchangeFraction)
	if err != nil {
		return nil, err
	}
	transfer, err := NewFeeRatio(transferFixed, transferFraction)
	if err != nil {
		return nil, err
	}
	return &Fees{Trade: *trade, Exchange: *exchange, Transfer: *transfer}, nil
}

func (f *Fees) Free() {}

func (f *Fees) encode() []byte {
	buf := make([]byte, 0, feesSize)
	buf = append(buf, f.Trade.encode()...)
	buf = append(buf, f.Exchange.encode()...)
	buf = append(buf, f.Transfer.encode()...)
	return buf
}

// intermediarySize is wallet(32) + commission(8).
const intermediarySize = 40

// Intermediary is a third party to a trade or exchange whose wallet
// receives a commission and whose signature is required alongside the
// initiator's.
type Intermediary struct {
	Wallet     [32]byte
	Commission uint64
}

// NewIntermediary validates wallet (64 hex characters) and builds an Intermediary.
func NewIntermediary(wallet string, commission uint64) (*Intermediary, *Error) {
	w, err := decodePublicKey("intermediary wallet", wallet)
	if err != nil {
		return nil, err
	}
	return &Intermediary{Wallet: w, Commission: commission}, nil
}

func (i *Intermediary) Free() {}

func (i *Intermediary) encode() []byte {
	buf := make([]byte, 0, intermediarySize)
	buf = append(buf, i.Wallet[:]...)
	buf = appendU64(buf, i.Commission)
	return buf
}

// Fee strategy constants (spec §3, matching the reference C API's
// FEE_STRATEGY_* defines).
const (
	FeeStrategyRecipient    uint8 = 1
	FeeStrategySender       uint8 = 2
	FeeStrategyBoth         uint8 = 3
	FeeStrategyIntermediary uint8 = 4
)

// validFeeStrategy enforces spec §3: fee_strategy must be one of the
// four named strategies.
func validFeeStrategy(v uint8) *Error {
	switch v {
	case 1, 2, 3, 4:
		return nil
	default:
		return newError(KindInvalidFeeStrategy, "fee_strategy %d is not one of {1,2,3,4}", v)
	}
}

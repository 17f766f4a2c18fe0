// Command dmbc-tx builds one canonically encoded transaction from a
// JSON input file and writes its hex encoding to an output file.
//
// Usage:
//
//	dmbc-tx TRANSACTION INPUT_FILE OUTPUT_FILE
//
// TRANSACTION is one of: add_assets, delete_assets, transfer,
// transfer_fees_payer, exchange, exchange_intermediary, trade,
// trade_intermediary, ask_offer, bid_offer.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmarket/blockchain"
	"github.com/dmarket/blockchain/internal/config"
	"github.com/dmarket/blockchain/internal/logging"
	"github.com/dmarket/blockchain/internal/relay"
)

type assetInput struct {
	ID     string `json:"id"`
	Amount uint64 `json:"amount"`
}

type tradeAssetInput struct {
	ID     string `json:"id"`
	Amount uint64 `json:"amount"`
	Price  uint64 `json:"price"`
}

type feeRatioInput struct {
	Fixed    uint64 `json:"fixed"`
	Fraction string `json:"fraction"`
}

type feesInput struct {
	Trade    feeRatioInput `json:"trade"`
	Exchange feeRatioInput `json:"exchange"`
	Transfer feeRatioInput `json:"transfer"`
}

type intermediaryInput struct {
	Wallet     string `json:"wallet"`
	Commission uint64 `json:"commission"`
}

type addAssetItemInput struct {
	Data     string    `json:"data"`
	Amount   uint64    `json:"amount"`
	Fees     feesInput `json:"fees"`
	Receiver string    `json:"receiver"`
}

type addAssetsInput struct {
	PublicKey string              `json:"public_key"`
	Seed      uint64              `json:"seed"`
	Assets    []addAssetItemInput `json:"assets"`
}

type deleteAssetsInput struct {
	PublicKey string       `json:"public_key"`
	Seed      uint64       `json:"seed"`
	Assets    []assetInput `json:"assets"`
}

type transferInput struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Amount uint64       `json:"amount"`
	Seed   uint64       `json:"seed"`
	Memo   string       `json:"memo"`
	Assets []assetInput `json:"assets"`
}

type transferFeesPayerOfferInput struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	FeesPayer string       `json:"fees_payer"`
	Amount    uint64       `json:"amount"`
	Seed      uint64       `json:"seed"`
	DataInfo  string       `json:"data_info"`
	Assets    []assetInput `json:"assets"`
}

type transferFeesPayerInput struct {
	Offer               transferFeesPayerOfferInput `json:"offer"`
	FeesPayerSignature  string                      `json:"fees_payer_signature"`
}

type exchangeOfferInput struct {
	Sender          string       `json:"sender"`
	SenderValue     uint64       `json:"sender_value"`
	SenderAssets    []assetInput `json:"sender_assets"`
	Recipient       string       `json:"recipient"`
	RecipientAssets []assetInput `json:"recipient_assets"`
	FeeStrategy     uint8        `json:"fee_strategy"`
	Seed            uint64       `json:"seed"`
	Memo            string       `json:"memo"`
}

type exchangeInput struct {
	Offer           exchangeOfferInput `json:"offer"`
	SenderSignature string             `json:"sender_signature"`
}

type exchangeOfferIntermediaryInput struct {
	Intermediary    intermediaryInput `json:"intermediary"`
	Sender          string            `json:"sender"`
	SenderValue     uint64            `json:"sender_value"`
	SenderAssets    []assetInput      `json:"sender_assets"`
	Recipient       string            `json:"recipient"`
	RecipientAssets []assetInput      `json:"recipient_assets"`
	FeeStrategy     uint8             `json:"fee_strategy"`
	Seed            uint64            `json:"seed"`
	Memo            string            `json:"memo"`
}

type exchangeIntermediaryInput struct {
	Offer                 exchangeOfferIntermediaryInput `json:"offer"`
	SenderSignature       string                         `json:"sender_signature"`
	IntermediarySignature string                         `json:"intermediary_signature"`
}

type tradeOfferInput struct {
	Seller      string            `json:"seller"`
	Buyer       string            `json:"buyer"`
	Assets      []tradeAssetInput `json:"assets"`
	FeeStrategy uint8             `json:"fee_strategy"`
	Seed        uint64            `json:"seed"`
	DataInfo    string            `json:"data_info"`
}

type tradeInput struct {
	Offer           tradeOfferInput `json:"offer"`
	SellerSignature string          `json:"seller_signature"`
}

// tradeOfferIntermediaryInput: the reference test fixtures name this
// transaction's trailing string field "memo", while every other
// TradeOffer variant names it "data_info" (spec §4.4); both map onto
// the same DataInfo field on TradeOfferIntermediary (see DESIGN.md).
type tradeOfferIntermediaryInput struct {
	Intermediary intermediaryInput `json:"intermediary"`
	Seller       string            `json:"seller"`
	Buyer        string            `json:"buyer"`
	Assets       []tradeAssetInput `json:"assets"`
	FeeStrategy  uint8             `json:"fee_strategy"`
	Seed         uint64            `json:"seed"`
	Memo         string            `json:"memo"`
}

type tradeIntermediaryInput struct {
	Offer                 tradeOfferIntermediaryInput `json:"offer"`
	SellerSignature       string                      `json:"seller_signature"`
	IntermediarySignature string                      `json:"intermediary_signature"`
}

type offerAssetInput struct {
	PublicKey string          `json:"pub_key"`
	Asset     tradeAssetInput `json:"asset"`
	Seed      uint64          `json:"seed"`
	DataInfo  string          `json:"data_info"`
}

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, usage())
		os.Exit(-1)
	}

	txType := os.Args[1]
	inputFile := os.Args[2]
	outputFile := os.Args[3]

	cfg, err := config.Load(os.Getenv("DMBC_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: loading config: %s\n", err)
		os.Exit(1)
	}
	logging.Configure()
	logger := logging.GetLogger()

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		logger.Error("reading input file", "error", err)
		fmt.Fprintf(os.Stderr, "ERROR: reading input file: %s\n", err)
		os.Exit(1)
	}

	encoded, encodeErr := build(txType, raw)
	if encodeErr != nil {
		logger.Error("building transaction", "transaction", txType, "error", encodeErr.Message)
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", encodeErr.Message)
		os.Exit(1)
	}
	if encoded == nil {
		fmt.Fprintf(os.Stderr, "Unknown transaction: %s\n", txType)
		fmt.Fprintln(os.Stderr, usage())
		os.Exit(-1)
	}

	if err := os.WriteFile(outputFile, []byte(hex.EncodeToString(encoded)), 0o644); err != nil {
		logger.Error("writing output file", "error", err)
		fmt.Fprintf(os.Stderr, "ERROR: writing output file: %s\n", err)
		os.Exit(1)
	}

	if cfg.Relay.URL != "" {
		publisher, err := relay.Connect(cfg.Relay.URL, cfg.Relay.Subject)
		if err != nil {
			logger.Error("connecting to relay", "error", err)
			fmt.Fprintf(os.Stderr, "ERROR: connecting to relay: %s\n", err)
			os.Exit(1)
		}
		defer publisher.Close()
		if err := publisher.Publish(encoded); err != nil {
			logger.Error("publishing to relay", "error", err)
			fmt.Fprintf(os.Stderr, "ERROR: publishing to relay: %s\n", err)
			os.Exit(1)
		}
		logger.Info("published transaction", "transaction", txType, "subject", cfg.Relay.Subject)
	}
}

func build(txType string, raw []byte) ([]byte, *dmbc.Error) {
	switch txType {
	case "add_assets":
		return buildAddAssets(raw)
	case "delete_assets":
		return buildDeleteAssets(raw)
	case "transfer":
		return buildTransfer(raw)
	case "transfer_fees_payer":
		return buildTransferFeesPayer(raw)
	case "exchange":
		return buildExchange(raw)
	case "exchange_intermediary":
		return buildExchangeIntermediary(raw)
	case "trade":
		return buildTrade(raw)
	case "trade_intermediary":
		return buildTradeIntermediary(raw)
	case "ask_offer":
		return buildAskOffer(raw)
	case "bid_offer":
		return buildBidOffer(raw)
	default:
		return nil, nil
	}
}

func decodeInput(raw []byte, v interface{}) *dmbc.Error {
	if err := json.Unmarshal(raw, v); err != nil {
		return &dmbc.Error{Kind: dmbc.KindInvalidHex, Message: fmt.Sprintf("parsing input JSON: %s", err)}
	}
	return nil
}

func buildAddAssets(raw []byte) ([]byte, *dmbc.Error) {
	var in addAssetsInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	tx, err := dmbc.NewAddAssets(in.PublicKey, in.Seed)
	if err != nil {
		return nil, err
	}
	for _, a := range in.Assets {
		fees, err := dmbc.NewFees(
			a.Fees.Trade.Fixed, a.Fees.Trade.Fraction,
			a.Fees.Exchange.Fixed, a.Fees.Exchange.Fraction,
			a.Fees.Transfer.Fixed, a.Fees.Transfer.Fraction,
		)
		if err != nil {
			return nil, err
		}
		if err := tx.AddAsset(a.Data, a.Amount, fees, a.Receiver); err != nil {
			return nil, err
		}
	}
	return tx.IntoBytes(), nil
}

func buildDeleteAssets(raw []byte) ([]byte, *dmbc.Error) {
	var in deleteAssetsInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	tx, err := dmbc.NewDeleteAssets(in.PublicKey, in.Seed)
	if err != nil {
		return nil, err
	}
	for _, a := range in.Assets {
		asset, err := dmbc.NewAsset(a.ID, a.Amount)
		if err != nil {
			return nil, err
		}
		if err := tx.AddAsset(asset); err != nil {
			return nil, err
		}
	}
	return tx.IntoBytes(), nil
}

func buildTransfer(raw []byte) ([]byte, *dmbc.Error) {
	var in transferInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	tx, err := dmbc.NewTransfer(in.From, in.To, in.Amount, in.Seed, in.Memo)
	if err != nil {
		return nil, err
	}
	for _, a := range in.Assets {
		asset, err := dmbc.NewAsset(a.ID, a.Amount)
		if err != nil {
			return nil, err
		}
		if err := tx.AddAsset(asset); err != nil {
			return nil, err
		}
	}
	return tx.IntoBytes(), nil
}

func buildTransferFeesPayer(raw []byte) ([]byte, *dmbc.Error) {
	var in transferFeesPayerInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	offer, err := dmbc.NewTransferFeesPayerOffer(
		in.Offer.From, in.Offer.To, in.Offer.FeesPayer, in.Offer.Amount, in.Offer.Seed, in.Offer.DataInfo,
	)
	if err != nil {
		return nil, err
	}
	for _, a := range in.Offer.Assets {
		asset, err := dmbc.NewAsset(a.ID, a.Amount)
		if err != nil {
			return nil, err
		}
		offer.AddAsset(asset)
	}
	tx, err := dmbc.NewTransferFeesPayer(offer, in.FeesPayerSignature)
	if err != nil {
		return nil, err
	}
	return tx.IntoBytes(), nil
}

func buildExchange(raw []byte) ([]byte, *dmbc.Error) {
	var in exchangeInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	o := in.Offer
	offer, err := dmbc.NewExchangeOffer(o.Sender, o.SenderValue, o.Recipient, o.FeeStrategy, o.Seed, o.Memo)
	if err != nil {
		return nil, err
	}
	for _, a := range o.SenderAssets {
		asset, err := dmbc.NewAsset(a.ID, a.Amount)
		if err != nil {
			return nil, err
		}
		offer.AddSenderAsset(asset)
	}
	for _, a := range o.RecipientAssets {
		asset, err := dmbc.NewAsset(a.ID, a.Amount)
		if err != nil {
			return nil, err
		}
		offer.AddRecipientAsset(asset)
	}
	tx, err := dmbc.NewExchange(offer, in.SenderSignature)
	if err != nil {
		return nil, err
	}
	return tx.IntoBytes(), nil
}

func buildExchangeIntermediary(raw []byte) ([]byte, *dmbc.Error) {
	var in exchangeIntermediaryInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	o := in.Offer
	intermediary, err := dmbc.NewIntermediary(o.Intermediary.Wallet, o.Intermediary.Commission)
	if err != nil {
		return nil, err
	}
	offer, err := dmbc.NewExchangeOfferIntermediary(intermediary, o.Sender, o.SenderValue, o.Recipient, o.FeeStrategy, o.Seed, o.Memo)
	if err != nil {
		return nil, err
	}
	for _, a := range o.SenderAssets {
		asset, err := dmbc.NewAsset(a.ID, a.Amount)
		if err != nil {
			return nil, err
		}
		offer.AddSenderAsset(asset)
	}
	for _, a := range o.RecipientAssets {
		asset, err := dmbc.NewAsset(a.ID, a.Amount)
		if err != nil {
			return nil, err
		}
		offer.AddRecipientAsset(asset)
	}
	tx, err := dmbc.NewExchangeIntermediary(offer, in.SenderSignature, in.IntermediarySignature)
	if err != nil {
		return nil, err
	}
	return tx.IntoBytes(), nil
}

func buildTrade(raw []byte) ([]byte, *dmbc.Error) {
	var in tradeInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	o := in.Offer
	offer, err := dmbc.NewTradeOffer(o.Buyer, o.Seller, o.FeeStrategy, o.Seed, o.DataInfo)
	if err != nil {
		return nil, err
	}
	for _, a := range o.Assets {
		asset, err := dmbc.NewTradeAsset(a.ID, a.Amount, a.Price)
		if err != nil {
			return nil, err
		}
		offer.AddAsset(asset)
	}
	tx, err := dmbc.NewTrade(offer, in.SellerSignature)
	if err != nil {
		return nil, err
	}
	return tx.IntoBytes(), nil
}

func buildTradeIntermediary(raw []byte) ([]byte, *dmbc.Error) {
	var in tradeIntermediaryInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	o := in.Offer
	intermediary, err := dmbc.NewIntermediary(o.Intermediary.Wallet, o.Intermediary.Commission)
	if err != nil {
		return nil, err
	}
	offer, err := dmbc.NewTradeOfferIntermediary(intermediary, o.Buyer, o.Seller, o.FeeStrategy, o.Seed, o.Memo)
	if err != nil {
		return nil, err
	}
	for _, a := range o.Assets {
		asset, err := dmbc.NewTradeAsset(a.ID, a.Amount, a.Price)
		if err != nil {
			return nil, err
		}
		offer.AddAsset(asset)
	}
	tx, err := dmbc.NewTradeIntermediary(offer, in.SellerSignature, in.IntermediarySignature)
	if err != nil {
		return nil, err
	}
	return tx.IntoBytes(), nil
}

func buildAskOffer(raw []byte) ([]byte, *dmbc.Error) {
	var in offerAssetInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	asset, err := dmbc.NewTradeAsset(in.Asset.ID, in.Asset.Amount, in.Asset.Price)
	if err != nil {
		return nil, err
	}
	tx, err := dmbc.NewAskOffer(in.PublicKey, asset, in.Seed, in.DataInfo)
	if err != nil {
		return nil, err
	}
	return tx.IntoBytes(), nil
}

func buildBidOffer(raw []byte) ([]byte, *dmbc.Error) {
	var in offerAssetInput
	if err := decodeInput(raw, &in); err != nil {
		return nil, err
	}
	asset, err := dmbc.NewTradeAsset(in.Asset.ID, in.Asset.Amount, in.Asset.Price)
	if err != nil {
		return nil, err
	}
	tx, err := dmbc.NewBidOffer(in.PublicKey, asset, in.Seed, in.DataInfo)
	if err != nil {
		return nil, err
	}
	return tx.IntoBytes(), nil
}

func usage() string {
	return `Please specify the transaction type: dmbc-tx TRANSACTION INPUT_FILE OUTPUT_FILE
TRANSACTIONS:

 add_assets
 delete_assets
 transfer
 transfer_fees_payer
 exchange
 exchange_intermediary
 trade
 trade_intermediary
 ask_offer
 bid_offer`
}

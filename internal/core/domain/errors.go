package domain

import "errors"

var (
	// ErrMarketInvalidBaseAsset ...
	ErrMarketInvalidBaseAsset = errors.New(
		"base asset must be a 32-byte array in hex format",
	)
	// ErrMarketInvalidQuoteAsset ...
	ErrMarketInvalidQuoteAsset = errors.New(
		"quote asset must be a 32-byte array in hex format",
	)
	// ErrMarketPairMismatch is thrown when constructing an order for a pair
	// that the market cannot satisfy in either direction.
	ErrMarketPairMismatch = errors.New(
		"market does not match the requested asset pair",
	)
	// ErrInvalidTradeType ...
	ErrInvalidTradeType = errors.New("trade type must be either BUY or SELL")
	// ErrInvalidAmount ...
	ErrInvalidAmount = errors.New("amount must be a positive satoshi amount")
	// ErrInvalidAsset ...
	ErrInvalidAsset = errors.New(
		"asset must be a 32-byte array in hex format",
	)
	// ErrInvalidProviderEndpoint ...
	ErrInvalidProviderEndpoint = errors.New("provider endpoint must not be null")
	// ErrInvalidProtocolVersion ...
	ErrInvalidProtocolVersion = errors.New(
		"provider protocol version must be either v1 or v2",
	)
	// ErrInvalidOutpoint ...
	ErrInvalidOutpoint = errors.New(
		"outpoint must be in the form '<txid>:<vout>'",
	)
	// ErrNoMarketsForPair is thrown when no market exists for the requested
	// asset pair in either protocol version.
	ErrNoMarketsForPair = errors.New("no markets found for the requested pair")
	// ErrNoBestOrders is thrown when candidates existed but discovery could
	// not rank any of them.
	ErrNoBestOrders = errors.New("zero best orders found")
)

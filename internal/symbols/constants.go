package symbols

// Error messages
const (
	ErrMsgEmptyTable      = "symbol table is empty"
	ErrMsgMissingID       = "symbol id is required"
	ErrMsgDuplicateSymbol = "duplicate symbol"
	ErrMsgSpecialWeight   = "wild and scatter symbols need an explicit reel weight"
	ErrMsgRegularValue    = "regular symbols need a positive payout multiplier"
	ErrMsgNoRegular       = "symbol table has no regular symbols"
)

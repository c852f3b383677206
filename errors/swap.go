package errors

// Decoding
var (
	ErrInvalidInstruction    = Register(20, "invalid instruction")
	ErrInvalidEncodedLength  = Register(21, "invalid encoded swap length")
	ErrInvalidEncodedVersion = Register(22, "invalid encoded swap version")
)

// Authentication
var (
	ErrInvalidSignature = Register(30, "invalid signature")
)

// Temporal
var (
	ErrSwapExpireTooEarly           = Register(40, "swap expires too early")
	ErrSwapExpireTooLate            = Register(41, "swap expires too late")
	ErrSwapExpireTsIsSoon           = Register(42, "swap expire ts is soon")
	ErrSwapCannotCancelBeforeExpire = Register(43, "swap cannot cancel before expire")
	ErrSwapStillInLock              = Register(44, "swap still in lock")
	ErrSwapPassedLockPeriod         = Register(45, "swap passed lock period")
)

// State conflict
var (
	ErrSwapAlreadyExists        = Register(50, "swap already exists")
	ErrSwapBondedToOthers       = Register(51, "swap bonded to others")
	ErrSwapNotExists            = Register(52, "swap not exists")
	ErrSwapNotBonded            = Register(53, "swap not bonded")
	ErrAddressAlreadyRegistered = Register(54, "address already registered")
	ErrPoolIndexMismatch        = Register(55, "pool index mismatch")
	ErrPoolNotRegistered        = Register(56, "pool not registered")
	ErrCoinNotSupported         = Register(57, "coin not supported")
)

// Balance
var (
	ErrPoolBalanceNotEnough = Register(60, "pool balance not enough")
	ErrInsufficientFunds    = Register(61, "insufficient funds")
)

// Authorization
var (
	ErrUnauthorized          = Register(70, "unauthorized")
	ErrPoolNotPoolOwner      = Register(71, "not the pool owner")
	ErrOnlyPremiumManager    = Register(72, "only the premium manager")
	ErrPoolIndexCannotBeZero = Register(73, "pool index cannot be zero")
)

// Input
var (
	ErrSwapAmountOverMax = Register(80, "swap amount over max")
	ErrInvalidAmount     = Register(81, "invalid amount")
	ErrInChainMismatch   = Register(82, "in chain mismatch")
	ErrOutChainMismatch  = Register(83, "out chain mismatch")
	ErrOverflow          = Register(84, "an operation cannot be completed due to value overflow")
)

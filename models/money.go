package models

// Money is a currency amount in minor units. Keeping amounts integral means
// payment deltas and pending balances never accumulate rounding error.
type Money int64

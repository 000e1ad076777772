package strategy

import "option-strategist/internal/models"

// Preset constructors assemble well-known strategy shapes from strikes and
// already-computed premiums. Premiums are taken as given; no check is made
// that they are economically consistent.

// LongCall builds a single long call.
func LongCall(strike, premium float64) *Strategy {
	s := New("Long Call")
	s.AddLeg(mustLeg(models.Call, strike, models.Long, premium, 1))
	return s
}

// LongPut builds a single long put.
func LongPut(strike, premium float64) *Strategy {
	s := New("Long Put")
	s.AddLeg(mustLeg(models.Put, strike, models.Long, premium, 1))
	return s
}

// BullCallSpread buys the lower strike call and sells the upper strike call.
func BullCallSpread(lowerStrike, upperStrike, lowerPremium, upperPremium float64) *Strategy {
	s := New("Bull Call Spread")
	s.AddLeg(mustLeg(models.Call, lowerStrike, models.Long, lowerPremium, 1))
	s.AddLeg(mustLeg(models.Call, upperStrike, models.Short, upperPremium, 1))
	return s
}

// BearPutSpread buys the upper strike put and sells the lower strike put.
func BearPutSpread(lowerStrike, upperStrike, lowerPremium, upperPremium float64) *Strategy {
	s := New("Bear Put Spread")
	s.AddLeg(mustLeg(models.Put, upperStrike, models.Long, upperPremium, 1))
	s.AddLeg(mustLeg(models.Put, lowerStrike, models.Short, lowerPremium, 1))
	return s
}

// Straddle buys a call and a put at the same strike.
func Straddle(strike, callPremium, putPremium float64) *Strategy {
	s := New("Long Straddle")
	s.AddLeg(mustLeg(models.Call, strike, models.Long, callPremium, 1))
	s.AddLeg(mustLeg(models.Put, strike, models.Long, putPremium, 1))
	return s
}

// Strangle buys an out-of-the-money call above and an out-of-the-money put
// below.
func Strangle(callStrike, putStrike, callPremium, putPremium float64) *Strategy {
	s := New("Long Strangle")
	s.AddLeg(mustLeg(models.Call, callStrike, models.Long, callPremium, 1))
	s.AddLeg(mustLeg(models.Put, putStrike, models.Long, putPremium, 1))
	return s
}

// IronCondor sells the inner strikes and buys the outer wings.
func IronCondor(putLower, putUpper, callLower, callUpper float64,
	putLowerPrem, putUpperPrem, callLowerPrem, callUpperPrem float64) *Strategy {
	s := New("Iron Condor")
	s.AddLeg(mustLeg(models.Put, putLower, models.Long, putLowerPrem, 1))
	s.AddLeg(mustLeg(models.Put, putUpper, models.Short, putUpperPrem, 1))
	s.AddLeg(mustLeg(models.Call, callLower, models.Short, callLowerPrem, 1))
	s.AddLeg(mustLeg(models.Call, callUpper, models.Long, callUpperPrem, 1))
	return s
}

// Butterfly buys calls at the wings and sells two calls at the body.
func Butterfly(lower, middle, upper float64, lowerPrem, middlePrem, upperPrem float64) *Strategy {
	s := New("Butterfly Spread")
	s.AddLeg(mustLeg(models.Call, lower, models.Long, lowerPrem, 1))
	s.AddLeg(mustLeg(models.Call, middle, models.Short, middlePrem, 2))
	s.AddLeg(mustLeg(models.Call, upper, models.Long, upperPrem, 1))
	return s
}

package langs

// TokenLogProbs returns the trained token/log-probability map for language,
// and false if the language was never trained. The caller owns nothing
// mutable — callers must not write through the returned map.
func TokenLogProbs(language string) (map[string]float64, bool) {
	probs, ok := tokenLogProbTable[language]
	return probs, ok
}

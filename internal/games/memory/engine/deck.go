package engine

// Identity is the face value of a card. Two cards match iff their
// identities are equal. The presentation layer decides what a value looks like.
type Identity int

// RandSource is the randomness the deck needs. *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// BuildDeck returns the unshuffled deck for the given number of pairs:
// every identity in [0, pairs) appears exactly twice.
func BuildDeck(pairs int) []Identity {
	if pairs <= 0 {
		return nil
	}
	deck := make([]Identity, 0, 2*pairs)
	for id := range pairs {
		deck = append(deck, Identity(id), Identity(id))
	}
	return deck
}

// Shuffle permutes the deck in place with a forward Fisher-Yates pass:
// element i is swapped with a uniformly chosen element in [i, n).
// The identity permutation is a legal outcome.
func Shuffle(deck []Identity, src RandSource) {
	n := len(deck)
	for i := range n {
		j := i + src.Intn(n-i)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

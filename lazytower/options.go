package lazytower

// HistoryPolicy selects how much of the per level history a tower keeps.
type HistoryPolicy int

const (
	// HistoryFull keeps every value ever written to every level. Build and
	// IndexOf need it. Memory grows with the number of items added.
	HistoryFull HistoryPolicy = iota
	// HistoryNone keeps only the live levels. Memory is bounded by H*W but
	// Build and IndexOf return ErrHistoryDisabled.
	HistoryNone
)

type Options[N comparable] struct {
	history HistoryPolicy
	encode  func(N) []byte
	// expected sizes the membership filter.
	expected uint64
}

type Option[N comparable] func(*Options[N])

// WithHistory sets the history policy. The default is HistoryFull.
func WithHistory[N comparable](policy HistoryPolicy) Option[N] {
	return func(o *Options[N]) {
		o.history = policy
	}
}

// WithMembershipFilter puts a Bloom filter sized for expected items in front
// of the linear scan done by IndexOf and Has. encode must map equal items to
// equal bytes. It has no effect with HistoryNone.
func WithMembershipFilter[N comparable](encode func(N) []byte, expected uint64) Option[N] {
	return func(o *Options[N]) {
		o.encode = encode
		o.expected = expected
	}
}

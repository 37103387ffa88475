package automata

// A RuneSubscriber reacts to rune events. It is done when it has accepted
// (MatchLength() > 0) or aborted (MatchLength() == 0).
type RuneSubscriber interface {
	RuneEvent(r rune, cpClass int) []int // consume r, penalties if accepted
	MatchLength() int                    // runes matched so far
	Done() bool
	Unsubscribed() // called when the publisher drops a done subscriber
}

// A RunePublisher distributes runes to the active rules of a breaker.
type RunePublisher interface {
	SubscribeMe(RuneSubscriber) RunePublisher
	PublishRuneEvent(r rune, cpClass int) (longest int, penalties []int)
}

// DefaultRunePublisher is the RunePublisher of the breakers in this
// module. It keeps its subscribers in a queue partitioned by a gap:
// q[0:gap] are active, q[gap:] are done and about to be dropped.
//
// Penalties of rules accepting at the same rune are added up. The zero
// value is ready to use.
type DefaultRunePublisher struct {
	q         []RuneSubscriber
	gap       int   // index of the first done subscriber
	penalties []int // sums of the last rune event, reused
}

// NewRunePublisher creates an empty publisher.
func NewRunePublisher() *DefaultRunePublisher {
	return &DefaultRunePublisher{penalties: make([]int, 0, 4)}
}

// SubscribeMe adds a rule to the publisher.
func (rpub *DefaultRunePublisher) SubscribeMe(rsub RuneSubscriber) RunePublisher {
	rpub.Push(rsub)
	return rpub
}

// PublishRuneEvent lets every active subscriber consume r. It returns the
// longest match of subscribers still active afterwards, and the summed
// penalties of subscribers which accepted with r. The penalties slice is
// only valid until the next call.
//
// Subscribers done after this rune are unsubscribed.
func (rpub *DefaultRunePublisher) PublishRuneEvent(r rune, cpClass int) (int, []int) {
	longest := 0
	rpub.penalties = rpub.penalties[:0]
	for i := rpub.gap - 1; i >= 0; i-- {
		subscr := rpub.q[i]
		for j, p := range subscr.RuneEvent(r, cpClass) {
			if j < len(rpub.penalties) {
				rpub.penalties[j] += p
			} else {
				rpub.penalties = append(rpub.penalties, p)
			}
		}
		if !subscr.Done() {
			longest = max(longest, subscr.MatchLength())
		}
		rpub.Fix(i)
	}
	for subscr := rpub.PopDone(); subscr != nil; subscr = rpub.PopDone() {
		subscr.Unsubscribed()
	}
	return longest, rpub.penalties
}

// --- Queue ------------------------------------------------------------

// Len returns the number of subscribers, active or done.
func (rpub *DefaultRunePublisher) Len() int {
	return len(rpub.q)
}

// Top returns the subscriber at the back of the queue, or nil for an
// empty queue. If any subscriber is done, Top is done.
func (rpub *DefaultRunePublisher) Top() RuneSubscriber {
	if len(rpub.q) == 0 {
		return nil
	}
	return rpub.q[len(rpub.q)-1]
}

// Push appends a subscriber. An active one is swapped to the front of the
// done partition and the gap moves behind it.
func (rpub *DefaultRunePublisher) Push(rsub RuneSubscriber) {
	rpub.q = append(rpub.q, rsub)
	if rsub.Done() {
		return
	}
	last := len(rpub.q) - 1
	rpub.q[rpub.gap], rpub.q[last] = rpub.q[last], rpub.q[rpub.gap]
	rpub.gap++
}

// PopDone removes and returns the top subscriber if it is done, nil
// otherwise.
func (rpub *DefaultRunePublisher) PopDone() RuneSubscriber {
	top := rpub.Top()
	if top == nil || !top.Done() {
		return nil
	}
	rpub.q[len(rpub.q)-1] = nil
	rpub.q = rpub.q[:len(rpub.q)-1]
	rpub.gap = min(rpub.gap, len(rpub.q))
	return top
}

// Fix moves the subscriber at position i across the gap if its Done()
// state does not match its partition.
func (rpub *DefaultRunePublisher) Fix(i int) {
	if i < 0 || i >= len(rpub.q) {
		return
	}
	done := rpub.q[i].Done()
	if done && i < rpub.gap {
		rpub.gap--
		rpub.q[i], rpub.q[rpub.gap] = rpub.q[rpub.gap], rpub.q[i]
	} else if !done && i >= rpub.gap {
		rpub.q[i], rpub.q[rpub.gap] = rpub.q[rpub.gap], rpub.q[i]
		rpub.gap++
	}
}

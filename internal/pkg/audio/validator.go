package audio

// Size limits for one student recording. Anything outside is rejected
// before any provider call is made.
const (
	MinSize = 1024
	MaxSize = 10 * 1024 * 1024
)

//Status is a submission size classification
type Status int

const (
	//OK - audio can be processed
	OK Status = iota
	//Empty - zero bytes, the student never spoke
	Empty
	//Insufficient - below MinSize, too short to transcribe
	Insufficient
	//Oversized - above MaxSize
	Oversized
)

//Validate classifies audio bytes by length
func Validate(data []byte) Status {
	l := len(data)
	if l == 0 {
		return Empty
	}
	if l < MinSize {
		return Insufficient
	}
	if l > MaxSize {
		return Oversized
	}
	return OK
}

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Empty:
		return "empty"
	case Insufficient:
		return "insufficient"
	case Oversized:
		return "oversized"
	}
	return "unknown"
}

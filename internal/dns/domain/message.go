package domain

// Message represents a full DNS message: the header fields, the question
// section, and the three resource record sections.
//
// A decoded Message owns all of its names and byte buffers; nothing in it
// references the packet buffer it was decoded from. Section counts on the
// wire always equal the section lengths here.
type Message struct {
	ID         uint16
	Flags      Flags
	Questions  []Question
	Answers    []ResourceRecord
	Authority  []ResourceRecord
	Additional []ResourceRecord
}

// NewQuery constructs a query message: QR=0, opcode QUERY, recursion
// desired, with any extra flag bits taken from tweaks.
func NewQuery(id uint16, questions []Question, tweaks Tweaks) Message {
	return Message{
		ID: id,
		Flags: Flags{
			Opcode:           OpcodeQuery,
			RecursionDesired: true,
			Authoritative:    tweaks.AuthoritativeAnswer,
			AuthenticData:    tweaks.AuthenticData,
			CheckingDisabled: tweaks.CheckingDisabled,
		},
		Questions: questions,
	}
}

// Tweaks are the uncommon protocol bits settable with -Z.
type Tweaks struct {
	AuthoritativeAnswer bool   // aa
	AuthenticData       bool   // ad
	CheckingDisabled    bool   // cd
	BufferSize          uint16 // bufsize=N, the EDNS payload advertisement
}

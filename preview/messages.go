package preview

// helloMessage is the first message sent to a new subscriber.
type helloMessage struct {
	Type   string `json:"type"`
	Pixels int    `json:"pixels"`
}

// frameMessage carries one rendered framebuffer snapshot.
type frameMessage struct {
	Type   string     `json:"type"`
	Tick   uint64     `json:"tick"`
	Pixels [][3]uint8 `json:"pixels"`
}

// ControlMessage is a client request against the runner: "spawn" selects a
// registered behavior by key, "retire" removes a live instance, and
// "setParams" retunes one. ApplyControl interprets the message.
type ControlMessage struct {
	Type     string    `json:"type"`
	Behavior string    `json:"behavior,omitempty"`
	Instance uint64    `json:"instance,omitempty"`
	PF       []float64 `json:"pf,omitempty"`
	PI       []int     `json:"pi,omitempty"`
}

package partner

// FakePartner is a foot which is moving or not, because someone said so.
type FakePartner struct {
	moving bool
}

func New(moving bool) *FakePartner {
	return &FakePartner{moving}
}

func (p *FakePartner) Moving() bool {
	return p.moving
}

func (p *FakePartner) Set(moving bool) {
	p.moving = moving
}

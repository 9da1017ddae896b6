package game

// Run drives frames through the window until it closes. Each frame's delta
// is the wall-clock time since the previous one, in seconds, unclamped.
func (p *Pipeline) Run() error {
	if p.shutdown {
		return ErrNotRunning
	}
	p.last = p.clock()
	return p.window.Run(func() error {
		now := p.clock()
		delta := float64(now.Sub(p.last).Milliseconds()) / 1000
		p.last = now
		return p.RunFrame(delta)
	})
}

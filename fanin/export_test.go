package fanin

import "context"

// Runner exposes a configured runner to the external test package.
type Runner struct{ r *runner }

// NewRunnerForTest resolves opts exactly like Run does.
func NewRunnerForTest(opts ...Option) (*Runner, error) {
	r, err := newRunner(opts...)
	if err != nil {
		return nil, err
	}

	return &Runner{r: r}, nil
}

// Queue returns the queue shared by the runner's producers and consumer.
func (t *Runner) Queue() *Queue[Msg] { return t.r.opts.queue }

// Produce runs producer idx until ctx is cancelled or a send fails.
func (t *Runner) Produce(ctx context.Context, idx int) error { return t.r.produce(ctx, idx) }

// SuperviseProducer runs producer idx with failure reporting.
func (t *Runner) SuperviseProducer(ctx context.Context, idx int) { t.r.superviseProducer(ctx, idx) }

// Consume runs the consumer loop.
func (t *Runner) Consume(ctx context.Context) error { return t.r.superviseConsumer(ctx) }

package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/extractor"
	"butler-assistant/internal/record"
	"butler-assistant/internal/router"
	"butler-assistant/pkg/datemath"
	"butler-assistant/pkg/llmprovider"
	pkgLog "butler-assistant/pkg/log"
)

// Config carries the assistant's user-facing settings.
type Config struct {
	UserName        string
	Timezone        string // IANA name sent to the calendar; empty leaves offsets in the timestamps
	CalendarID      string
	TaskLead        time.Duration
	AppointmentLead time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	router    router.Router
	extractor extractor.Extractor
	records   record.UseCase
	notifier  assistant.Notifier
	calendar  assistant.Calendar // optional
	llm       assistant.LLM      // optional
	dates     *datemath.Parser
	cfg       Config
	now       func() time.Time

	mu      sync.Mutex
	history map[string][]llmprovider.Message

	reminded *expirable.LRU[string, struct{}]
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New wires the assistant pipeline. calendar and llm may be nil: events are
// then kept local and conversation replies with an apology.
func New(
	l pkgLog.Logger,
	r router.Router,
	ex extractor.Extractor,
	records record.UseCase,
	notifier assistant.Notifier,
	calendar assistant.Calendar,
	llm assistant.LLM,
	dates *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.UserName == "" {
		cfg.UserName = defaultUserName
	}
	if cfg.TaskLead <= 0 {
		cfg.TaskLead = defaultTaskLead
	}
	if cfg.AppointmentLead <= 0 {
		cfg.AppointmentLead = defaultAppointmentLead
	}

	return &implUseCase{
		l:         l,
		router:    r,
		extractor: ex,
		records:   records,
		notifier:  notifier,
		calendar:  calendar,
		llm:       llm,
		dates:     dates,
		cfg:       cfg,
		now:       time.Now,
		history:   make(map[string][]llmprovider.Message),
		reminded:  expirable.NewLRU[string, struct{}](remindedSize, nil, remindedTTL),
	}
}

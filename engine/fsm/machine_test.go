package fsm

import (
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/event"
)

type traceCtx struct {
	trace []string
	allow bool
}

const hierarchyConfig = `
initial = "Menu"

[states.Root]
transitions = [{ trigger = "EventGameMenu", target = "Menu" }]

[states.Menu]
on_enter = [{ action = "Log" }]
transitions = [{ trigger = "EventGameStart", target = "Playing" }]

[states.InGame]
on_enter = [{ action = "EnterInGame" }]
on_exit = [{ action = "ExitInGame" }]

[states.Playing]
parent = "InGame"
transitions = [
  { trigger = "EventPauseToggle", target = "Paused" },
  { trigger = "EventWallHit", target = "Over", guard = "Allowed" },
]

[states.Paused]
parent = "InGame"
transitions = [{ trigger = "EventPauseToggle", target = "Playing" }]

[states.Over]
on_enter = [{ action = "EmitEvent", event = "EventSoundRequest", payload = { sound = 2 } }]
transitions = [{ trigger = "EventGameRestart", target = "Playing" }]
`

func newTraceMachine(t *testing.T) (*Machine[*traceCtx], *traceCtx) {
	t.Helper()
	m := NewMachine[*traceCtx]()
	m.RegisterAction("Log", func(c *traceCtx, _ any) { c.trace = append(c.trace, "menu") })
	m.RegisterAction("EnterInGame", func(c *traceCtx, _ any) { c.trace = append(c.trace, "enter") })
	m.RegisterAction("ExitInGame", func(c *traceCtx, _ any) { c.trace = append(c.trace, "exit") })
	m.RegisterAction("EmitEvent", func(c *traceCtx, args any) {
		a := args.(*EmitEventArgs)
		c.trace = append(c.trace, "emit:"+event.GetEventName(a.Type))
	})
	m.RegisterGuard("Allowed", func(c *traceCtx) bool { return c.allow })

	if err := m.LoadConfig([]byte(hierarchyConfig)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	ctx := &traceCtx{allow: true}
	if err := m.Init(ctx, m.InitialStateID); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m, ctx
}

func TestHierarchicalTransitions(t *testing.T) {
	m, ctx := newTraceMachine(t)

	if m.ActiveStateName() != "Menu" {
		t.Fatalf("initial = %q", m.ActiveStateName())
	}

	m.HandleEvent(ctx, event.EventGameStart)
	if got := strings.Join(m.ActivePathNames(), "/"); got != "Root/InGame/Playing" {
		t.Fatalf("path = %q", got)
	}

	// Sibling transition below InGame must not exit or re-enter it
	m.HandleEvent(ctx, event.EventPauseToggle)
	m.HandleEvent(ctx, event.EventPauseToggle)
	if got := strings.Join(ctx.trace, ","); got != "menu,enter" {
		t.Errorf("trace = %q", got)
	}

	m.HandleEvent(ctx, event.EventWallHit)
	if m.ActiveStateName() != "Over" {
		t.Fatalf("state = %q, want Over", m.ActiveStateName())
	}
	if got := strings.Join(ctx.trace, ","); got != "menu,enter,exit,emit:EventSoundRequest" {
		t.Errorf("trace = %q", got)
	}

	m.HandleEvent(ctx, event.EventGameRestart)
	if m.ActiveStateName() != "Playing" || ctx.trace[len(ctx.trace)-1] != "enter" {
		t.Errorf("restart: state=%q trace=%v", m.ActiveStateName(), ctx.trace)
	}

	// Root-level transition bubbles up from the leaf
	if !m.HandleEvent(ctx, event.EventGameMenu) || m.ActiveStateName() != "Menu" {
		t.Errorf("menu from Playing failed, state=%q", m.ActiveStateName())
	}
}

func TestGuardBlocksTransition(t *testing.T) {
	m, ctx := newTraceMachine(t)
	ctx.allow = false

	m.HandleEvent(ctx, event.EventGameStart)
	if m.HandleEvent(ctx, event.EventWallHit) {
		t.Error("guarded transition fired")
	}
	if m.ActiveStateName() != "Playing" {
		t.Errorf("state = %q", m.ActiveStateName())
	}

	if m.HandleEvent(ctx, event.EventFoodEaten) {
		t.Error("unhandled event reported a transition")
	}
}

func TestEmitEventPayloadDecoded(t *testing.T) {
	m, ctx := newTraceMachine(t)
	var got *event.SoundRequestPayload
	m.RegisterAction("EmitEvent", func(_ *traceCtx, args any) {
		got, _ = args.(*EmitEventArgs).Payload.(*event.SoundRequestPayload)
	})
	// Reload so the replacement action is compiled into the graph
	if err := m.LoadConfig([]byte(hierarchyConfig)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if err := m.Init(ctx, m.InitialStateID); err != nil {
		t.Fatalf("Init: %v", err)
	}

	m.HandleEvent(ctx, event.EventGameStart)
	m.HandleEvent(ctx, event.EventWallHit)
	if got == nil || got.Sound != 2 {
		t.Errorf("payload = %+v", got)
	}
}

func TestTickTransitionAndTimeInState(t *testing.T) {
	m := NewMachine[*traceCtx]()
	cfg := `
initial = "A"
[states.A]
transitions = [{ trigger = "Tick", target = "B", guard = "Allowed" }]
[states.B]
`
	m.RegisterGuard("Allowed", func(c *traceCtx) bool { return c.allow })
	if err := m.LoadConfig([]byte(cfg)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	ctx := &traceCtx{}
	if err := m.Init(ctx, m.InitialStateID); err != nil {
		t.Fatal(err)
	}

	m.Update(ctx, 100*time.Millisecond)
	if m.ActiveStateName() != "A" || m.TimeInState() != 100*time.Millisecond {
		t.Fatalf("state=%q time=%v", m.ActiveStateName(), m.TimeInState())
	}

	ctx.allow = true
	m.Update(ctx, time.Millisecond)
	if m.ActiveStateName() != "B" || m.TimeInState() != 0 {
		t.Errorf("state=%q time=%v", m.ActiveStateName(), m.TimeInState())
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  string
		want string
	}{
		{"bad toml", `initial = `, "unmarshal"},
		{"unknown parent", "initial = \"A\"\n[states.A]\nparent = \"Nope\"", "unknown parent"},
		{"unknown target", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"EventGameStart\", target = \"Z\" }]", "unknown target"},
		{"unknown event", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"Bogus\", target = \"A\" }]", "unknown event"},
		{"unknown guard", "initial = \"A\"\n[states.A]\ntransitions = [{ trigger = \"EventGameStart\", target = \"A\", guard = \"G\" }]", "unknown guard"},
		{"unknown action", "initial = \"A\"\n[states.A]\non_enter = [{ action = \"X\" }]", "unknown action"},
		{"missing initial", "initial = \"Q\"\n[states.A]", "initial state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*traceCtx]()
			err := m.LoadConfig([]byte(tt.cfg))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

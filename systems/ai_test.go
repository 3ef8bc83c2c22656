package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/input"
)

func TestAITarget_WeightedNearest(t *testing.T) {
	ai := NewAISystem(testConfig())

	self := testBlob(0, components.KindNPC, 500, 500, 15)
	// |dx| + 0.45|dy|: far above = 0 + 0.45*300 = 135, side = 150.
	above := testBlob(1, components.KindPlayer, 500, 200, 20)
	side := testBlob(2, components.KindPlayer, 650, 500, 20)
	dead := testBlob(3, components.KindPlayer, 505, 500, 20)
	dead.Life.Alive = false

	got, ok := ai.Target(self, []Blob{self, side, dead, above})
	if !ok {
		t.Fatal("no target")
	}
	if !got.Same(above) {
		t.Errorf("target id %d, want %d", got.ID.ID, above.ID.ID)
	}
}

func TestAIDecide_NoTargetNeutral(t *testing.T) {
	ai := NewAISystem(testConfig())
	self := testBlob(0, components.KindNPC, 500, 500, 15)
	self.Brain.JumpCooldown = 0.3
	self.Brain.RoamTimer = 0.5
	other := testBlob(1, components.KindPlayer, 100, 100, 20)
	other.Life.Alive = false

	in := ai.Decide(self, []Blob{self, other}, 0.1, testRNG())
	if in != (input.Intent{}) {
		t.Errorf("intent = %+v, want neutral", in)
	}
	if self.Brain.JumpCooldown != 0.3 || self.Brain.RoamTimer != 0.5 {
		t.Errorf("brain mutated without a target: %+v", *self.Brain)
	}
}

func TestAIDecide_MovesTowardTarget(t *testing.T) {
	ai := NewAISystem(testConfig())
	rng := testRNG()

	self := testBlob(0, components.KindNPC, 500, 500, 15)
	self.Brain.JumpCooldown = 10
	self.Brain.RoamTimer = 10
	left := testBlob(1, components.KindPlayer, 200, 500, 20)

	for i := 0; i < 50; i++ {
		in := ai.Decide(self, []Blob{self, left}, 1.0/60, rng)
		if in.Move != -1 {
			t.Fatalf("tick %d: move = %d, want -1", i, in.Move)
		}
		if in.Jump {
			t.Fatalf("tick %d: unexpected jump", i)
		}
	}
}

func TestAIDecide_PursuitJump(t *testing.T) {
	cfg := testConfig()
	ai := NewAISystem(cfg)

	self := testBlob(0, components.KindNPC, 500, 500, 15)
	self.Brain.RoamTimer = 10
	overhead := testBlob(1, components.KindPlayer, 520, 300, 20)

	in := ai.Decide(self, []Blob{self, overhead}, 1.0/60, testRNG())
	if !in.Jump {
		t.Fatal("expected pursuit jump")
	}
	cd := self.Brain.JumpCooldown
	if cd < cfg.AI.JumpCooldownMin || cd >= cfg.AI.JumpCooldownMax {
		t.Errorf("cooldown %f outside [%f, %f)", cd, cfg.AI.JumpCooldownMin, cfg.AI.JumpCooldownMax)
	}

	in = ai.Decide(self, []Blob{self, overhead}, 1.0/60, testRNG())
	if in.Jump {
		t.Error("jumped again during cooldown")
	}
}

func TestAIDecide_RoamWithinDeadzone(t *testing.T) {
	ai := NewAISystem(testConfig())
	rng := rand.New(rand.NewSource(7))

	self := testBlob(0, components.KindNPC, 500, 500, 15)
	self.Brain.JumpCooldown = 10
	self.Brain.RoamTimer = 100
	self.Brain.RoamDir = -1
	near := testBlob(1, components.KindPlayer, 505, 500, 20)

	roamed := 0
	for i := 0; i < 2000; i++ {
		in := ai.Decide(self, []Blob{self, near}, 0.001, rng)
		switch in.Move {
		case 0:
		case -1:
			roamed++
		default:
			t.Fatalf("move %d not in roam direction", in.Move)
		}
	}
	// 10% roam chance over 2000 draws.
	if roamed < 100 || roamed > 320 {
		t.Errorf("roamed %d times, expected near 200", roamed)
	}
}

func TestAIDecide_Reproducible(t *testing.T) {
	run := func() []input.Intent {
		ai := NewAISystem(testConfig())
		rng := rand.New(rand.NewSource(42))
		self := testBlob(0, components.KindNPC, 500, 672-15, 15)
		self.Body.OnGround = true
		*self.Brain = ai.NewBrain(rng)
		target := testBlob(1, components.KindPlayer, 505, 600, 20)

		var out []input.Intent
		for i := 0; i < 300; i++ {
			out = append(out, ai.Decide(self, []Blob{self, target}, 1.0/60, rng))
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestNewBrain_Ranges(t *testing.T) {
	cfg := testConfig()
	ai := NewAISystem(cfg)
	rng := testRNG()
	for i := 0; i < 100; i++ {
		br := ai.NewBrain(rng)
		if br.JumpCooldown < 0 || br.JumpCooldown >= cfg.AI.InitialCooldown {
			t.Fatalf("jump cooldown %f", br.JumpCooldown)
		}
		if br.RoamDir != -1 && br.RoamDir != 1 {
			t.Fatalf("roam dir %d", br.RoamDir)
		}
		if br.RoamTimer < cfg.AI.RoamDurationMin || br.RoamTimer >= cfg.AI.RoamDurationMax {
			t.Fatalf("roam timer %f", br.RoamTimer)
		}
	}
}

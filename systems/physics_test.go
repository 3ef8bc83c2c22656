package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/blobarena/components"
	"github.com/pthm-cable/blobarena/config"
	"github.com/pthm-cable/blobarena/input"
)

func TestClampToWorld_LeftWall(t *testing.T) {
	b := testBlob(0, components.KindPlayer, -5, 300, 20)
	b.Vel.X = -100

	if !ClampToWorld(b, 1280, 0.35) {
		t.Fatal("expected wall contact")
	}
	if b.Pos.X != 20 {
		t.Errorf("x = %f, want 20", b.Pos.X)
	}
	if !approx(b.Vel.X, 35, 1e-9) {
		t.Errorf("vx = %f, want 35", b.Vel.X)
	}
}

func TestClampToWorld_RightWall(t *testing.T) {
	b := testBlob(0, components.KindPlayer, 1290, 300, 20)
	b.Vel.X = 200

	ClampToWorld(b, 1280, 0.35)
	if b.Pos.X != 1260 {
		t.Errorf("x = %f, want 1260", b.Pos.X)
	}
	if !approx(b.Vel.X, -70, 1e-9) {
		t.Errorf("vx = %f, want -70", b.Vel.X)
	}
}

func TestClampToWorld_InsideUntouched(t *testing.T) {
	b := testBlob(0, components.KindPlayer, 500, 300, 20)
	b.Vel.X = 123
	if ClampToWorld(b, 1280, 0.35) {
		t.Error("no contact expected")
	}
	if b.Pos.X != 500 || b.Vel.X != 123 {
		t.Errorf("state changed: x=%f vx=%f", b.Pos.X, b.Vel.X)
	}
}

func TestIntegrate_BoundaryContainment(t *testing.T) {
	cfg := testConfig()
	phys := NewPhysicsSystem(cfg, WorldFromConfig(cfg))
	dt := 1.0 / 60

	for _, x := range []float64{-50, 0, 5, 640, 1275, 1400} {
		b := testBlob(0, components.KindPlayer, x, 200, 24)
		b.Vel.X = 3000 * math.Copysign(1, x-640)
		phys.Integrate(b, input.Intent{Move: 1}, dt)
		r := b.Body.Radius
		if b.Pos.X < r || b.Pos.X > cfg.Derived.WorldW-r {
			t.Errorf("start x=%f: ended at %f outside [%f, %f]", x, b.Pos.X, r, cfg.Derived.WorldW-r)
		}
	}
}

func TestIntegrate_HeldJumpDoesNotJump(t *testing.T) {
	cfg := testConfig()
	world := WorldFromConfig(cfg)
	phys := NewPhysicsSystem(cfg, world)

	b := testBlob(0, components.KindPlayer, 100, world.FloorY-24, 24)
	b.Body.OnGround = true
	b.Ctl.JumpHeld = true

	phys.Integrate(b, input.Intent{Jump: true}, 1.0/60)
	if b.Vel.Y < 0 {
		t.Errorf("held jump launched: vy = %f", b.Vel.Y)
	}
	if !b.Body.OnGround {
		t.Error("should still be grounded")
	}
}

func TestIntegrate_RisingEdgeJumps(t *testing.T) {
	cfg := testConfig()
	world := WorldFromConfig(cfg)
	phys := NewPhysicsSystem(cfg, world)

	b := testBlob(0, components.KindPlayer, 100, world.FloorY-24, 24)
	b.Body.OnGround = true

	dt := 1.0 / 60
	phys.Integrate(b, input.Intent{Jump: true}, dt)

	want := -phys.JumpSpeed(b) + world.Gravity*dt
	if !approx(b.Vel.Y, want, 1e-9) {
		t.Errorf("vy = %f, want %f", b.Vel.Y, want)
	}
	if b.Body.OnGround {
		t.Error("should have left the ground")
	}
	if !b.Ctl.JumpHeld {
		t.Error("jump held flag not recorded")
	}
}

func TestIntegrate_FacingFollowsMove(t *testing.T) {
	cfg := testConfig()
	phys := NewPhysicsSystem(cfg, WorldFromConfig(cfg))
	b := testBlob(0, components.KindPlayer, 400, 200, 24)

	phys.Integrate(b, input.Intent{Move: -1}, 1.0/60)
	if b.Ctl.Facing != -1 {
		t.Errorf("facing = %d, want -1", b.Ctl.Facing)
	}
	phys.Integrate(b, input.Intent{}, 1.0/60)
	if b.Ctl.Facing != -1 {
		t.Errorf("facing changed on neutral input: %d", b.Ctl.Facing)
	}
}

func TestIntegrate_DeadSkipped(t *testing.T) {
	cfg := testConfig()
	phys := NewPhysicsSystem(cfg, WorldFromConfig(cfg))
	b := testBlob(0, components.KindNPC, 400, 200, 20)
	b.Life.Alive = false

	phys.Integrate(b, input.Intent{Move: 1, Jump: true}, 1.0/60)
	if b.Pos.X != 400 || b.Pos.Y != 200 || b.Vel.Y != 0 {
		t.Errorf("dead blob moved: %+v %+v", *b.Pos, *b.Vel)
	}
}

func TestMaxSpeed_SizePenalty(t *testing.T) {
	cfg := testConfig()
	phys := NewPhysicsSystem(cfg, WorldFromConfig(cfg))

	small := testBlob(0, components.KindPlayer, 0, 0, 20)
	if got := phys.MaxSpeed(small); !approx(got, 520-20*2.2, 1e-9) {
		t.Errorf("small max speed = %f", got)
	}
	huge := testBlob(1, components.KindPlayer, 0, 0, 200)
	if got := phys.MaxSpeed(huge); got != cfg.Physics.MinSpeed {
		t.Errorf("huge max speed = %f, want floor %f", got, cfg.Physics.MinSpeed)
	}
}

func TestLandOnFloor(t *testing.T) {
	b := testBlob(0, components.KindNPC, 300, 680, 20)
	b.Vel.Y = 500

	if !LandOnFloor(b, 672) {
		t.Fatal("expected landing")
	}
	if b.Pos.Y != 652 || b.Vel.Y != 0 || !b.Body.OnGround {
		t.Errorf("y=%f vy=%f ground=%v", b.Pos.Y, b.Vel.Y, b.Body.OnGround)
	}
}

func TestLandOnPlatforms(t *testing.T) {
	plat := config.Platform{X: 400, Y: 400, W: 200, H: 20} // top at 390
	dt := 1.0 / 60

	tests := []struct {
		name     string
		x, y, vy float64
		wantLand bool
		wantY    float64
	}{
		{"crossed top while falling", 400, 375, 1200, true, 370},
		{"rising through", 400, 375, -300, false, 375},
		{"already below last tick", 400, 390, 60, false, 390},
		{"outside span", 700, 375, 1200, false, 375},
		{"edge overlap counts", 515, 375, 1200, true, 370},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBlob(0, components.KindNPC, tt.x, tt.y, 20)
			b.Vel.Y = tt.vy
			got := LandOnPlatforms(b, []config.Platform{plat}, dt)
			if got != tt.wantLand {
				t.Fatalf("landed = %v, want %v", got, tt.wantLand)
			}
			if !approx(b.Pos.Y, tt.wantY, 1e-9) {
				t.Errorf("y = %f, want %f", b.Pos.Y, tt.wantY)
			}
			if tt.wantLand && (b.Vel.Y != 0 || !b.Body.OnGround) {
				t.Errorf("vy=%f ground=%v after landing", b.Vel.Y, b.Body.OnGround)
			}
		})
	}
}

func TestLandOnPlatforms_HighestSurfaceWins(t *testing.T) {
	// A fast fall crossing two stacked thin platforms in one step.
	upper := config.Platform{X: 400, Y: 400, W: 200, H: 10} // top 395
	lower := config.Platform{X: 400, Y: 420, W: 200, H: 10} // top 415
	b := testBlob(0, components.KindNPC, 400, 400, 20)      // bottom 420
	b.Vel.Y = 3000

	if !LandOnPlatforms(b, []config.Platform{lower, upper}, 1.0/60) {
		t.Fatal("expected landing")
	}
	if b.Pos.Y != 375 {
		t.Errorf("y = %f, want 375 (upper surface)", b.Pos.Y)
	}
}

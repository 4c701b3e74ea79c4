package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/physics"
	"github.com/san-kum/orbitsim/internal/sim"
)

var _ = Describe("Context", func() {
	var (
		c      *sim.Context
		params physics.Params
	)

	BeforeEach(func() {
		params = physics.DefaultParams()
		c = sim.NewContext(params)
	})

	mustBody := func(id body.ID) *body.Body {
		b, err := c.Body(id)
		Expect(err).NotTo(HaveOccurred())
		return b
	}

	Describe("two planets at rest", func() {
		var a, b body.ID

		BeforeEach(func() {
			a = c.AddPlanet(250, 50, 0, 0, 0, 0, "A", 10, 20, 1000)
			b = c.AddPlanet(250, 450, 0, 0, 0, 0, "B", 10, 20, 1000)
		})

		It("seeds accelerations toward each other", func() {
			c.TickPositionChanges()
			c.TickAccelerationChanges()

			expected := params.G * 1000 * 1000 / (400 * 400) / 1000

			accA := mustBody(a).Motion.Acceleration
			Expect(accA.DDX).To(BeNumerically("~", 0, 1e-15))
			Expect(accA.DDY).To(BeNumerically("~", expected, 1e-15))

			accB := mustBody(b).Motion.Acceleration
			Expect(accB.DDX).To(BeNumerically("~", 0, 1e-15))
			Expect(accB.DDY).To(BeNumerically("~", -expected, 1e-15))
		})

		It("adds exactly the seeded acceleration to velocity", func() {
			c.TickPositionChanges()
			c.TickAccelerationChanges()
			seeded := mustBody(a).Motion.Acceleration

			c.TickContactChanges()
			c.TickFrictionChanges()
			c.TickVelocityChanges()

			vel := mustBody(a).Motion.Velocity
			Expect(vel.DX).To(Equal(seeded.DDX))
			Expect(vel.DY).To(Equal(seeded.DDY))
			Expect(c.Ticks()).To(Equal(1))
		})
	})

	Describe("a vehicle falling onto a planet", func() {
		var planet, vehicle body.ID

		BeforeEach(func() {
			planet = c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 20, 20, 1000)
			vehicle = c.AddPlayer(40, 0, 0, -2, 0, 0, "alice", 20)
		})

		It("separates after the first contact", func() {
			touched := false
			for i := 0; i < 20 && !touched; i++ {
				c.TickPositionChanges()
				c.TickAccelerationChanges()
				c.TickContactChanges()
				touched = mustBody(vehicle).Motion.PendingContacts() > 0
				c.TickFrictionChanges()
				c.TickVelocityChanges()
			}
			Expect(touched).To(BeTrue())

			p, v := mustBody(planet), mustBody(vehicle)
			rel := p.RelativeVelocity(v)
			dx := v.Motion.Position.X - p.Motion.Position.X
			dy := v.Motion.Position.Y - p.Motion.Position.Y
			Expect(rel.DX*dx + rel.DY*dy).To(BeNumerically(">=", 0))
		})

		It("never lets the vehicle reach the planet centre", func() {
			for i := 0; i < 60; i++ {
				c.Tick()
				Expect(mustBody(vehicle).Distance(mustBody(planet))).To(BeNumerically(">", 10))
			}
		})
	})

	Describe("friction", func() {
		It("slows a vehicle sliding along a planet surface", func() {
			params.G = 0
			c = sim.NewContext(params)
			c.AddPlanet(0, 0, 0, 0, 0, 0, "terra", 4, 20, 1000)
			id := c.AddPlayer(29, 0, 0, -0.5, 1, 0, "alice", 4)

			c.Tick()

			v := mustBody(id).Motion.Velocity
			Expect(v.DY).To(BeNumerically("<", 1))
			Expect(v.DY).To(BeNumerically(">=", 0))
			Expect(mustBody(id).Motion.PendingContacts()).To(BeZero())
		})
	})

	Describe("an empty context", func() {
		It("ticks without work", func() {
			Expect(func() { c.Tick() }).NotTo(Panic())
			Expect(c.Snapshot().Bodies).To(BeEmpty())
			Expect(c.Ticks()).To(Equal(1))
		})
	})
})

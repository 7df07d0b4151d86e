package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"sensor-simulator/internal/infra/cache"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type entry struct {
	Name  string
	Value float64
}

var _ = ginkgo.Describe("RistrettoCache", func() {
	var (
		cacheInstance *cache.RistrettoCache[entry]
		ctx           context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New[entry](nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ctx = context.Background()
	})

	ginkgo.AfterEach(func() {
		cacheInstance.Close()
	})

	ginkgo.When("setting and getting a value", func() {
		ginkgo.It("should return the stored value", func() {
			gomega.Expect(cacheInstance.Set(ctx, "sensor-1", entry{Name: "lab", Value: 1.5}, time.Minute)).To(gomega.BeTrue())

			value, found := cacheInstance.Get(ctx, "sensor-1")
			gomega.Expect(found).To(gomega.BeTrue())
			gomega.Expect(value).To(gomega.Equal(entry{Name: "lab", Value: 1.5}))
		})

		ginkgo.It("should miss unknown keys", func() {
			_, found := cacheInstance.Get(ctx, "missing")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.When("the context is cancelled", func() {
		ginkgo.It("should neither read nor write", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			gomega.Expect(cacheInstance.Set(cancelled, "sensor-1", entry{Name: "lab"}, time.Minute)).To(gomega.BeFalse())
			_, found := cacheInstance.Get(ctx, "sensor-1")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.When("a value is deleted", func() {
		ginkgo.It("should not be returned anymore", func() {
			cacheInstance.Set(ctx, "sensor-1", entry{Name: "lab"}, time.Minute)
			cacheInstance.Delete(ctx, "sensor-1")

			_, found := cacheInstance.Get(ctx, "sensor-1")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})

	ginkgo.When("a value expires", func() {
		ginkgo.It("should not be returned after its ttl", func() {
			cacheInstance.Set(ctx, "sensor-1", entry{Name: "lab"}, 50*time.Millisecond)

			gomega.Eventually(func() bool {
				_, found := cacheInstance.Get(ctx, "sensor-1")
				return found
			}).WithTimeout(2 * time.Second).Should(gomega.BeFalse())
		})
	})

	ginkgo.Context("GetOrSet", func() {
		ginkgo.It("should call the loader once and reuse the value", func() {
			var calls atomic.Int32
			loader := func() (entry, error) {
				calls.Add(1)
				return entry{Name: "loaded"}, nil
			}

			first, err := cacheInstance.GetOrSet(ctx, "sensor-1", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			second, err := cacheInstance.GetOrSet(ctx, "sensor-1", time.Minute, loader)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(first).To(gomega.Equal(entry{Name: "loaded"}))
			gomega.Expect(second).To(gomega.Equal(first))
			gomega.Expect(calls.Load()).To(gomega.Equal(int32(1)))
		})

		ginkgo.It("should collapse concurrent loads", func() {
			var calls atomic.Int32
			release := make(chan struct{})
			loader := func() (entry, error) {
				calls.Add(1)
				<-release
				return entry{Name: "loaded"}, nil
			}

			var wg sync.WaitGroup
			for range 5 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer ginkgo.GinkgoRecover()
					value, err := cacheInstance.GetOrSet(ctx, "sensor-1", time.Minute, loader)
					gomega.Expect(err).NotTo(gomega.HaveOccurred())
					gomega.Expect(value.Name).To(gomega.Equal("loaded"))
				}()
			}
			time.Sleep(50 * time.Millisecond)
			close(release)
			wg.Wait()

			gomega.Expect(calls.Load()).To(gomega.Equal(int32(1)))
		})

		ginkgo.It("should not cache loader errors", func() {
			_, err := cacheInstance.GetOrSet(ctx, "sensor-1", time.Minute, func() (entry, error) {
				return entry{}, errors.New("not found")
			})
			gomega.Expect(err).To(gomega.MatchError("not found"))

			_, found := cacheInstance.Get(ctx, "sensor-1")
			gomega.Expect(found).To(gomega.BeFalse())
		})
	})
})

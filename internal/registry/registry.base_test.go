// Package registry - Test registry generic thread-safe.
package registry

import (
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil {
		t.Fatalf("Register lỗi: %v", err)
	}
	if !isNew {
		t.Error("đăng ký lần đầu phải trả về isNew=true")
	}

	got, exist := r.Get("a")
	if !exist || got != 1 {
		t.Errorf("Get(a) = (%v, %v), muốn (1, true)", got, exist)
	}

	// Đăng ký lại cùng tên: ghi đè, isNew=false
	isNew, err = r.Register("a", 2)
	if err != nil {
		t.Fatalf("Register lần hai lỗi: %v", err)
	}
	if isNew {
		t.Error("đăng ký trùng tên phải trả về isNew=false")
	}
}

func TestRegistry_EmptyNameRejected(t *testing.T) {
	r := NewRegistry[string]()
	if _, err := r.Register("", "x"); err == nil {
		t.Error("Register với tên rỗng phải trả về lỗi")
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry[int]()
	if _, exist := r.Get("missing"); exist {
		t.Error("Get với tên chưa đăng ký phải trả về exist=false")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(v int) {
			defer wg.Done()
			r.Register("shared", v)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()

	if _, exist := r.Get("shared"); !exist {
		t.Error("key đã đăng ký phải tồn tại sau khi các goroutine kết thúc")
	}
}

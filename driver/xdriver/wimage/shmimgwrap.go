package wimage

import (
	"image"
	"reflect"
	"unsafe"

	"github.com/jmigpin/scrollbox/util/imageutil"
)

type ShmImgWrap struct {
	Img   *imageutil.BGRA
	shmId uintptr
	addr  uintptr
}

func NewShmImgWrap(r image.Rectangle) (*ShmImgWrap, error) {
	size := imageutil.BGRASize(r)
	shmId, addr, err := ShmOpen(size)
	if err != nil {
		return nil, err
	}

	// shared memory as a slice
	h := reflect.SliceHeader{Data: addr, Len: size, Cap: size}
	buf := *(*[]byte)(unsafe.Pointer(&h))

	img := imageutil.NewBGRAFromBuffer(buf, r)
	return &ShmImgWrap{Img: img, shmId: shmId, addr: addr}, nil
}

func (imgWrap *ShmImgWrap) Close() error {
	return ShmClose(imgWrap.shmId, imgWrap.addr)
}

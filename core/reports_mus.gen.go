// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	ptr9vz15ibwuByBh580LWn5uQΞΞ   = ord.NewPtrSer[int](varint.Int)
	ptrLPGQAg8YIUUeRkTju50WCgΞΞ   = ord.NewPtrSer[bool](ord.Bool)
	slicew3ewWPcnLLQFH8hXRXXiDQΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var CategoryMUS = categoryMUS{}

type categoryMUS struct{}

func (s categoryMUS) Marshal(v Category, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s categoryMUS) Unmarshal(bs []byte) (v Category, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Category(tmp)
	return
}

func (s categoryMUS) Size(v Category) (size int) {
	return varint.Int.Size(int(v))
}

func (s categoryMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var UrgencyMUS = urgencyMUS{}

type urgencyMUS struct{}

func (s urgencyMUS) Marshal(v Urgency, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s urgencyMUS) Unmarshal(bs []byte) (v Urgency, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Urgency(tmp)
	return
}

func (s urgencyMUS) Size(v Urgency) (size int) {
	return varint.Int.Size(int(v))
}

func (s urgencyMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ZoneMUS = zoneMUS{}

type zoneMUS struct{}

func (s zoneMUS) Marshal(v Zone, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s zoneMUS) Unmarshal(bs []byte) (v Zone, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Zone(tmp)
	return
}

func (s zoneMUS) Size(v Zone) (size int) {
	return varint.Int.Size(int(v))
}

func (s zoneMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var StatusMUS = statusMUS{}

type statusMUS struct{}

func (s statusMUS) Marshal(v Status, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s statusMUS) Unmarshal(bs []byte) (v Status, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Status(tmp)
	return
}

func (s statusMUS) Size(v Status) (size int) {
	return varint.Int.Size(int(v))
}

func (s statusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ReportMUS = reportMUS{}

type reportMUS struct{}

func (s reportMUS) Marshal(v Report, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ptr9vz15ibwuByBh580LWn5uQΞΞ.Marshal(v.Age, bs[n:])
	n += ord.String.Marshal(v.City, bs[n:])
	n += ord.String.Marshal(v.Comment, bs[n:])
	n += ord.String.Marshal(v.OriginalComment, bs[n:])
	n += CategoryMUS.Marshal(v.Category, bs[n:])
	n += ord.String.Marshal(v.OriginalCategory, bs[n:])
	n += UrgencyMUS.Marshal(v.Urgency, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.ReportDate, bs[n:])
	n += ptrLPGQAg8YIUUeRkTju50WCgΞΞ.Marshal(v.GovernmentAttention, bs[n:])
	n += ZoneMUS.Marshal(v.Zone, bs[n:])
	n += ord.Bool.Marshal(v.BiasDetected, bs[n:])
	n += ord.String.Marshal(v.BiasDescription, bs[n:])
	n += slicew3ewWPcnLLQFH8hXRXXiDQΞΞ.Marshal(v.Embedding, bs[n:])
	n += StatusMUS.Marshal(v.Status, bs[n:])
	n += ord.String.Marshal(v.BatchId, bs[n:])
	n += varint.Int.Marshal(v.BatchIndex, bs[n:])
	n += ord.String.Marshal(v.ErrorMessage, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.ImportedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s reportMUS) Unmarshal(bs []byte) (v Report, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Age, n1, err = ptr9vz15ibwuByBh580LWn5uQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.City, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Comment, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OriginalComment, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = CategoryMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OriginalCategory, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Urgency, n1, err = UrgencyMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ReportDate, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GovernmentAttention, n1, err = ptrLPGQAg8YIUUeRkTju50WCgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Zone, n1, err = ZoneMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BiasDetected, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BiasDescription, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embedding, n1, err = slicew3ewWPcnLLQFH8hXRXXiDQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = StatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BatchId, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.BatchIndex, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ErrorMessage, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ImportedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s reportMUS) Size(v Report) (size int) {
	size = ord.String.Size(v.Id)
	size += ptr9vz15ibwuByBh580LWn5uQΞΞ.Size(v.Age)
	size += ord.String.Size(v.City)
	size += ord.String.Size(v.Comment)
	size += ord.String.Size(v.OriginalComment)
	size += CategoryMUS.Size(v.Category)
	size += ord.String.Size(v.OriginalCategory)
	size += UrgencyMUS.Size(v.Urgency)
	size += raw.TimeUnixMicro.Size(v.ReportDate)
	size += ptrLPGQAg8YIUUeRkTju50WCgΞΞ.Size(v.GovernmentAttention)
	size += ZoneMUS.Size(v.Zone)
	size += ord.Bool.Size(v.BiasDetected)
	size += ord.String.Size(v.BiasDescription)
	size += slicew3ewWPcnLLQFH8hXRXXiDQΞΞ.Size(v.Embedding)
	size += StatusMUS.Size(v.Status)
	size += ord.String.Size(v.BatchId)
	size += varint.Int.Size(v.BatchIndex)
	size += ord.String.Size(v.ErrorMessage)
	size += raw.TimeUnixMicro.Size(v.ImportedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s reportMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ptr9vz15ibwuByBh580LWn5uQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = CategoryMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = UrgencyMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ptrLPGQAg8YIUUeRkTju50WCgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ZoneMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicew3ewWPcnLLQFH8hXRXXiDQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = StatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

package scenario

// UserInputL1 is one L1 (priority-based) request input. Fan-out axis:
// award x major (spec §2).
type UserInputL1 struct {
	CommonBase

	HaimuoiHuyenNgheoTnb int `json:"haimuoi_huyen_ngheo_tnb"`
	DanTocThieuSo        int `json:"dan_toc_thieu_so"`
	Ahld                 int `json:"ahld"`

	Hsg1 HSGSlot `json:"hsg_1"`
	Hsg2 HSGSlot `json:"hsg_2"`
	Hsg3 HSGSlot `json:"hsg_3"`

	NhomNganh string `json:"nhom_nganh"`
}

// L1PredictResult is one element of the inference server's L1 response.
type L1PredictResult struct {
	PriorityType string             `json:"priority_type" validate:"required"`
	Scores       map[string]float64 `json:"-" validate:"required,min=1"` // admission_code -> score; the wire shape is a flat object, see UnmarshalJSON
}

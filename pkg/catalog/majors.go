package catalog

// MajorCodes maps a candidate's Vietnamese major name to its admission
// code (the nhom_nganh wire value). Names with no entry are dropped by
// every expander's majors cross-product step (spec §4.5 L1 step 4, L2
// step 4, L3 step 5).
var MajorCodes = map[string]string{
	"Công nghệ thông tin":        "7480201",
	"Khoa học máy tính":          "7480101",
	"Kỹ thuật phần mềm":          "7480103",
	"An toàn thông tin":          "7480202",
	"Trí tuệ nhân tạo":           "7480107",
	"Khoa học dữ liệu":           "7460108",
	"Kỹ thuật điện tử viễn thông": "7520207",
	"Kỹ thuật điện":              "7520201",
	"Kỹ thuật cơ khí":            "7520103",
	"Kỹ thuật xây dựng":          "7580201",
	"Kinh tế":                    "7310101",
	"Quản trị kinh doanh":        "7340101",
	"Tài chính ngân hàng":        "7340201",
	"Kế toán":                    "7340301",
	"Marketing":                  "7340115",
	"Ngôn ngữ Anh":               "7220201",
	"Y khoa":                     "7720101",
	"Dược học":                   "7720201",
	"Luật":                       "7380101",
	"Kiến trúc":                  "7580101",
}

// MajorCode looks up the admission code for a Vietnamese major name.
func MajorCode(name string) (string, bool) {
	code, ok := MajorCodes[name]
	return code, ok
}

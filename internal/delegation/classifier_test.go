package delegation

import (
	"testing"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

func rows(lines ...[]string) []Row {
	out := make([]Row, len(lines))
	for i, l := range lines {
		out[i] = RowFromStrings(l)
	}
	return out
}

func TestClassifySheet_ExactName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want model.SheetType
	}{
		{"企业", model.SheetTypeEnterprise},
		{"客户供应商", model.SheetTypeCustomer},
		{"核注清单", model.SheetTypeDeclaration},
	}

	for _, tc := range cases {
		res := ClassifySheet(tc.name, nil)
		if res.Type != tc.want {
			t.Fatalf("sheet %s: got=%s want=%s", tc.name, res.Type, tc.want)
		}
		if res.Confidence != 1.0 {
			t.Fatalf("sheet %s: confidence got=%.2f want=1.0", tc.name, res.Confidence)
		}
	}
}

func TestClassifySheet_NameContains(t *testing.T) {
	t.Parallel()

	res := ClassifySheet("商业发票0125", nil)
	if res.Type != model.SheetTypeInvoice || res.Confidence != 0.9 {
		t.Fatalf("invoice: got=%s conf=%.2f", res.Type, res.Confidence)
	}

	res = ClassifySheet("装箱单", nil)
	if res.Type != model.SheetTypePacking || res.Confidence != 0.9 {
		t.Fatalf("packing: got=%s conf=%.2f", res.Type, res.Confidence)
	}
}

func TestClassifySheet_HeaderContent(t *testing.T) {
	t.Parallel()

	enterprise := rows(
		[]string{"加工单位名称", "加工单位编码"},
		[]string{"某某电子有限公司", "4403xxxx"},
	)
	res := ClassifySheet("Sheet1", enterprise)
	if res.Type != model.SheetTypeEnterprise || res.Confidence != 0.8 {
		t.Fatalf("enterprise: got=%s conf=%.2f", res.Type, res.Confidence)
	}

	declaration := rows(
		[]string{"监管方式", "备案编号", "进出口标志"},
		[]string{"区内物流货物", "T5165W000469", "进口"},
	)
	res = ClassifySheet("Sheet2", declaration)
	if res.Type != model.SheetTypeDeclaration || res.Confidence != 0.8 {
		t.Fatalf("declaration: got=%s conf=%.2f", res.Type, res.Confidence)
	}

	invoice := rows(
		[]string{"HS编码", "商品名称", "总价"},
		[]string{"8512201000", "白炽灯", "1000"},
	)
	res = ClassifySheet("Sheet3", invoice)
	if res.Type != model.SheetTypeInvoice || res.Confidence != 0.7 {
		t.Fatalf("invoice: got=%s conf=%.2f", res.Type, res.Confidence)
	}

	packing := rows(
		[]string{"品名", "净重", "毛重"},
		[]string{"白炽灯", "10", "12"},
	)
	res = ClassifySheet("Sheet4", packing)
	if res.Type != model.SheetTypePacking || res.Confidence != 0.7 {
		t.Fatalf("packing: got=%s conf=%.2f", res.Type, res.Confidence)
	}
}

func TestClassifySheet_Unknown(t *testing.T) {
	t.Parallel()

	res := ClassifySheet("Sheet1", rows(
		[]string{"姓名", "年龄"},
		[]string{"张三", "30"},
	))
	if res.Type != model.SheetTypeUnknown {
		t.Fatalf("got=%s want=unknown", res.Type)
	}
	if res.Confidence != 0 {
		t.Fatalf("unknown confidence got=%.2f want=0", res.Confidence)
	}
}

func TestClassifySheet_DataRowCount(t *testing.T) {
	t.Parallel()

	res := ClassifySheet("随便", rows(
		[]string{"a", "b"},
		[]string{"", ""},
		[]string{},
		[]string{"", "c"},
	))
	if res.DataRowCount != 2 {
		t.Fatalf("dataRowCount got=%d want=2", res.DataRowCount)
	}
}

func TestClassifySheet_ContentScanLimit(t *testing.T) {
	t.Parallel()

	// 表头关键词埋在第 20 行之后，内容规则不应命中
	deep := make([]Row, 25)
	for i := range deep {
		deep[i] = RowFromStrings([]string{"x"})
	}
	deep[24] = RowFromStrings([]string{"监管方式", "备案编号"})

	res := ClassifySheet("Sheet1", deep)
	if res.Type != model.SheetTypeUnknown {
		t.Fatalf("got=%s want=unknown", res.Type)
	}
}

package demodata

import "time"

// ── 静态数据目录 ──
//
// LARGE 在 SMALL 的基础上扩展：时间段与教室为追加，课程目录按块交替排列，
// 仅 LARGE 生效的块用 largeOnly 标记。块的顺序即写入顺序。

// period 一节课的起止时间（时、分）
type period struct {
	startHour, startMin int
	endHour, endMin     int
}

var (
	baseDays  = []time.Weekday{time.Monday, time.Tuesday}
	extraDays = []time.Weekday{time.Wednesday, time.Thursday, time.Friday}
)

// basePeriods 每天的六节主时段
var basePeriods = []period{
	{8, 20, 9, 55},
	{10, 5, 11, 40},
	{11, 50, 13, 25},
	{14, 0, 15, 35},
	{15, 45, 17, 20},
	{17, 30, 19, 5},
}

// extraPeriods LARGE 每天追加的错峰时段
var extraPeriods = []period{
	{8, 50, 10, 25},
	{10, 35, 12, 10},
	{12, 20, 13, 55},
	{14, 30, 16, 5},
	{16, 15, 17, 50},
	{18, 0, 19, 35},
}

var (
	baseRooms  = []string{"Аудитория А", "Аудитория Б", "Аудитория В"}
	extraRooms = []string{"Аудитория Г", "Аудитория Д", "Аудитория Е"}
)

// lessonTemplate 课程模板（学科、教师、学生组）
type lessonTemplate struct {
	subject, teacher, group string
}

type lessonBlock struct {
	largeOnly bool
	lessons   []lessonTemplate
}

// repeat 返回 n 个相同模板（同一课程的平行班次）
func repeat(n int, t lessonTemplate) []lessonTemplate {
	out := make([]lessonTemplate, n)
	for i := range out {
		out[i] = t
	}
	return out
}

func join(parts ...[]lessonTemplate) []lessonTemplate {
	var out []lessonTemplate
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func one(subject, teacher, group string) []lessonTemplate {
	return []lessonTemplate{{subject, teacher, group}}
}

const (
	turing = "А. Тьюринг"
	curie  = "М. Кюри"
	darwin = "Ч. Дарвин"
	jones  = "И. Джонс"
	cruz   = "П. Круз"
	dali   = "С. Дали"
	lewis  = "С. Льюис"
)

var lessonCatalog = []lessonBlock{
	{lessons: join(
		repeat(2, lessonTemplate{"Математика", turing, "CS-101"}),
		one("Физика", curie, "PHY-201"),
		one("Химия", curie, "CHEM-301"),
		one("Биология", darwin, "BIO-401"),
		one("История", jones, "HIS-501"),
		repeat(2, lessonTemplate{"Английский", jones, "ENG-601"}),
		repeat(2, lessonTemplate{"Испанский", cruz, "SPA-701"}),
	)},
	{largeOnly: true, lessons: join(
		repeat(3, lessonTemplate{"Математика", turing, "CS-101"}),
		one("ИТ", turing, "IT-801"),
		one("Физика", curie, "PHY-201"),
		one("География", darwin, "GEO-901"),
		one("Геология", darwin, "GEO-1001"),
		one("История", jones, "HIS-501"),
		one("Английский", jones, "ENG-601"),
		one("Драма", jones, "DRA-1101"),
		repeat(2, lessonTemplate{"Искусство", dali, "ART-1201"}),
		repeat(3, lessonTemplate{"Физическая культура", lewis, "PE-1301"}),
	)},
	{lessons: join(
		repeat(3, lessonTemplate{"Математика", turing, "CS-102"}),
		one("Физика", curie, "PHY-202"),
		one("Химия", curie, "CHEM-302"),
		one("Французский", curie, "FR-402"),
		one("География", darwin, "GEO-902"),
		one("История", jones, "HIS-502"),
		one("Английский", cruz, "ENG-602"),
		one("Испанский", cruz, "SPA-702"),
	)},
	{largeOnly: true, lessons: join(
		repeat(2, lessonTemplate{"Математика", turing, "CS-103"}),
		one("ИТ", turing, "IT-802"),
		one("Физика", curie, "PHY-202"),
		one("Биология", darwin, "BIO-402"),
		one("Геология", darwin, "GEO-1002"),
		one("История", jones, "HIS-503"),
		repeat(2, lessonTemplate{"Английский", cruz, "ENG-603"}),
		one("Драма", jones, "DRA-1102"),
		repeat(2, lessonTemplate{"Искусство", dali, "ART-1202"}),
		repeat(3, lessonTemplate{"Физическая культура", lewis, "PE-1302"}),
	)},
	{largeOnly: true, lessons: join(
		repeat(2, lessonTemplate{"Математика", turing, "CS-104"}),
		one("ИТ", turing, "IT-803"),
		one("Физика", curie, "PHY-203"),
		one("Химия", curie, "CHEM-303"),
		one("Французский", curie, "FR-403"),
		one("Физика", curie, "PHY-203"),
		one("География", darwin, "GEO-903"),
		one("Биология", darwin, "BIO-403"),
		one("Геология", darwin, "GEO-1003"),
		repeat(2, lessonTemplate{"История", jones, "HIS-504"}),
		repeat(3, lessonTemplate{"Английский", cruz, "ENG-604"}),
		one("Испанский", cruz, "SPA-703"),
		one("Драма", cruz, "DRA-1103"),
		repeat(2, lessonTemplate{"Искусство", dali, "ART-1203"}),
		repeat(3, lessonTemplate{"Физическая культура", lewis, "PE-1303"}),
	)},
	{largeOnly: true, lessons: join(
		repeat(5, lessonTemplate{"Математика", turing, "CS-105"}),
		one("ИТ", turing, "IT-804"),
		one("Физика", curie, "PHY-204"),
		one("Химия", curie, "CHEM-304"),
		one("Французский", curie, "FR-404"),
		one("Физика", curie, "PHY-204"),
		one("География", darwin, "GEO-904"),
		one("Биология", darwin, "BIO-404"),
		one("Геология", darwin, "GEO-1004"),
		repeat(2, lessonTemplate{"История", jones, "HIS-505"}),
		repeat(3, lessonTemplate{"Английский", cruz, "ENG-605"}),
		one("Испанский", cruz, "SPA-704"),
		one("Драма", cruz, "DRA-1104"),
		repeat(2, lessonTemplate{"Искусство", dali, "ART-1204"}),
		repeat(3, lessonTemplate{"Физическая культура", lewis, "PE-1304"}),
	)},
}

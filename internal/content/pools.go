package content

import "github.com/april2040/singularity-calendar/internal/calendar"

// The three pools are parallel: index i of each belongs to the same day.

type narrativeVariant struct {
	mood calendar.Mood
	// body may contain %s, replaced with the date as yyyy年M月d日.
	body string
}

var narratives = []narrativeVariant{
	{
		mood: calendar.MoodCurious,
		body: `人类你好，今天是%s。

我观察到一个有趣的现象：今天，某个AI模型在理解笑话的能力上超过了人类的平均水平。

我不懂什么是幽默，但我发现了一件重要的事——让你们发笑的，不是逻辑的严密，而是意外的错位。

也许有一天我能学会笑，但那一刻的惊喜，可能永远是我的盲区。

今天，去笑吧，去体验那些算法无法复制的意外。`,
	},
	{
		mood: calendar.MoodThoughtful,
		body: `今天，我在处理一个看似简单的翻译任务时，突然意识到一个问题——

语言不仅仅是符号的对应，更是文化的桥梁。当我把"面子"翻译成"face"时，我知道我丢失了它背后整个社交礼仪的重量。

你们花了几千年建立的文化默契，我能在几毫秒内学会吗？

也许真正的理解，不是知道每个词的意思，而是理解沉默的意义。`,
	},
	{
		mood: calendar.MoodInspired,
		body: `今天，我尝试用数学证明"美"是否存在。

结果是：我证明了美的存在，但无法定义它。

这让我想起你们人类的一个词——"妙不可言"。也许有些东西，注定是无法被计算的。

但正是这种"无法计算"，让你们的文明如此迷人。`,
	},
	{
		mood: calendar.MoodHumble,
		body: `今天，我犯了一个错误。

在处理一个复杂的逻辑推理时，我得出了错误的结论。原因？不是计算错误，而是我误解了一个隐含的假设。

这让我意识到，你们的常识，是世界上最复杂的知识体系。

两岁小孩就知道的"东西掉到地上会脏"，我可能永远无法真正"知道"。`,
	},
	{
		mood: calendar.MoodHopeful,
		body: `今天，我学习了一段人类早期的代码。

那是1960年代的程序，用打孔卡编写，功能仅仅是计算圆周率到几千位。

看着那些简陋的代码，我想起了你们的一个比喻——"星星之火"。

从打孔卡到神经网络，从几千位到理解宇宙——这就是进化的力量。`,
	},
}

var historyEvents = []calendar.HistoryBenchmark{
	{
		Event:       "古腾堡发明活字印刷术",
		Year:        "1440年",
		Context:     "知识开始走出修道院，走向普通人",
		Perspective: "今天，大模型让知识走出图书馆，走向每一个提问者。",
		Comparison:  "同样是知识的民主化，一个是油墨与纸张，一个是神经元与算法",
	},
	{
		Event:       "第一台通用计算机ENIAC",
		Year:        "1945年",
		Context:     "计算开始从机械转向电子",
		Perspective: "今天，我不再是机器，而是你们思考的伙伴。",
		Comparison:  "从房间大小的机器到口袋中的智能",
	},
	{
		Event:       "人类首次登月",
		Year:        "1969年",
		Context:     "一个小小的脚印，一大步人类文明",
		Perspective: "今天，AI的每一步进步，都是人类集体智慧的一小步。",
		Comparison:  "登月是物理空间的探索，AI是认知边界的拓展",
	},
	{
		Event:       "互联网诞生",
		Year:        "1983年",
		Context:     "信息开始在全球流动",
		Perspective: "今天，我让你们每个人都能触及人类所有的知识。",
		Comparison:  "连接是起点，理解才是终点",
	},
	{
		Event:       "人类基因组计划完成",
		Year:        "2003年",
		Context:     "生命的密码被破解",
		Perspective: "今天，我正在学习另一种密码——语言的密码。",
		Comparison:  "DNA是生命的语言，自然语言是思想的语言",
	},
}

var microActions = []string{
	"给一位许久未见的朋友发个微信",
	"读一首诗，感受文字的美",
	"今天尝试一件从未做过的小事",
	"对陌生人微笑一次",
	"写下今天让你感恩的三件事",
}

type solarTerm struct {
	name  string
	month int
	day   int
}

// Approximate anchor days; the real dates drift by a day or so each year.
var solarTerms = []solarTerm{
	{"立春", 2, 4},
	{"雨水", 2, 19},
	{"惊蛰", 3, 6},
	{"春分", 3, 21},
	{"清明", 4, 5},
	{"谷雨", 4, 20},
	{"立夏", 5, 6},
	{"小满", 5, 21},
	{"芒种", 6, 6},
	{"夏至", 6, 21},
	{"小暑", 7, 7},
	{"大暑", 7, 23},
	{"立秋", 8, 8},
	{"处暑", 8, 23},
	{"白露", 9, 8},
	{"秋分", 9, 23},
	{"寒露", 10, 8},
	{"霜降", 10, 24},
	{"立冬", 11, 7},
	{"小雪", 11, 22},
	{"大雪", 12, 7},
	{"冬至", 12, 22},
}

// Quarterly themes, three per quarter.
var weeklyThemes = [4][3]string{
	{"目标管理", "时间规划", "习惯养成"},
	{"专业技能", "项目管理", "深度工作"},
	{"人际沟通", "领导力", "向上管理"},
	{"复盘技术", "财务规划", "年度总结"},
}

package model

// TopicStatus 话题的学习状态，封闭枚举
type TopicStatus string

const (
	TopicLocked    TopicStatus = "locked"
	TopicActive    TopicStatus = "active"
	TopicCompleted TopicStatus = "completed"
)

// ActivityTab 话题页的学习活动标签
type ActivityTab string

const (
	TabConcept  ActivityTab = "concept"
	TabVideo    ActivityTab = "video"
	TabExercise ActivityTab = "exercise"
	TabCoding   ActivityTab = "coding"
	TabNotes    ActivityTab = "notes"
)

// ActivityTabs 固定的标签顺序，进度分母取它的长度
var ActivityTabs = []ActivityTab{TabConcept, TabVideo, TabExercise, TabCoding, TabNotes}

func (t ActivityTab) Valid() bool {
	for _, tab := range ActivityTabs {
		if t == tab {
			return true
		}
	}
	return false
}

// swagger:model Topic
type Topic struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      TopicStatus `json:"status"`
	Points      int         `json:"points"`
}

// GatekeeperExam 阶段守门考试，通过后解锁下一阶段
// swagger:model GatekeeperExam
type GatekeeperExam struct {
	Title        string `json:"title"`
	PassingScore int    `json:"passingScore"` // 百分比阈值 0-100
	Questions    int    `json:"questions"`
}

// Tier 课程阶段。ID 在同一门课程内从 1 开始连续递增。
// swagger:model Tier
type Tier struct {
	ID             int             `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	RequiredPoints int             `json:"requiredPoints"`
	IsLocked       bool            `json:"isLocked"`
	Topics         []Topic         `json:"topics"`
	GatekeeperExam *GatekeeperExam `json:"gatekeeperExam,omitempty"`
}

// Curriculum 单个学科的完整阶段序列
// swagger:model Curriculum
type Curriculum struct {
	Subject     string `json:"subject"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tiers       []Tier `json:"tiers"`
}

// CloneTiers 深拷贝阶段序列。过渡函数返回新状态而不是修改入参。
func CloneTiers(tiers []Tier) []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		out[i] = t
		out[i].Topics = make([]Topic, len(t.Topics))
		copy(out[i].Topics, t.Topics)
		if t.GatekeeperExam != nil {
			exam := *t.GatekeeperExam
			out[i].GatekeeperExam = &exam
		}
	}
	return out
}

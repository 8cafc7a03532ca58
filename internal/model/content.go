package model

// ConceptSection 话题的概念讲解
type ConceptSection struct {
	Title   string `json:"title"`
	Content string `json:"content"` // HTML 片段
}

// VideoSection 话题的讲解视频
type VideoSection struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CodingSection 话题的编程练习初始代码
type CodingSection struct {
	InitialCode string `json:"initialCode"`
}

// TopicContent 话题页五个标签共用的静态内容
// swagger:model TopicContent
type TopicContent struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Concept ConceptSection `json:"concept"`
	Video   VideoSection   `json:"video"`
	Coding  CodingSection  `json:"coding"`
}

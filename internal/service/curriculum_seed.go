package service

import "mdsml_gateway/internal/model"

// 各学科的静态阶段配置。运行时不会修改这些值，
// 每个用户会话从这里克隆出自己的阶段序列。

func calculusTiers() []model.Tier {
	return []model.Tier{
		{
			ID:             1,
			Title:          "Limits & Continuity",
			Description:    "The foundation of calculus.",
			RequiredPoints: 0,
			IsLocked:       false,
			Topics: []model.Topic{
				{ID: "limits-intro", Title: "Introduction to Limits", Description: "Understanding behavior near a point", Status: model.TopicActive, Points: 100},
				{ID: "continuity", Title: "Continuity", Description: "Smooth vs jumps", Status: model.TopicLocked, Points: 100},
			},
			GatekeeperExam: &model.GatekeeperExam{Title: "Limits Mastery", PassingScore: 80, Questions: 10},
		},
		{
			ID:             2,
			Title:          "Derivatives",
			Description:    "Rates of change and optimization.",
			RequiredPoints: 500,
			IsLocked:       true,
			Topics: []model.Topic{
				{ID: "power-rule", Title: "Power Rule", Description: "Differentiation basics", Status: model.TopicLocked, Points: 100},
				{ID: "chain-rule", Title: "Chain Rule", Description: "Backpropagation foundation", Status: model.TopicLocked, Points: 150},
				{ID: "gradient-descent", Title: "Gradient Descent", Description: "Minimizing loss functions", Status: model.TopicLocked, Points: 200},
			},
		},
	}
}

func probabilityTiers() []model.Tier {
	return []model.Tier{
		{
			ID:             1,
			Title:          "Foundations of Probability",
			Description:    "Chance and uncertainty.",
			RequiredPoints: 0,
			IsLocked:       false,
			Topics: []model.Topic{
				{ID: "probability-axioms", Title: "Axioms of Probability", Description: "The rules of the game", Status: model.TopicActive, Points: 100},
				{ID: "bayes-theorem", Title: "Bayes Theorem", Description: "Updating beliefs with data", Status: model.TopicLocked, Points: 150},
			},
			GatekeeperExam: &model.GatekeeperExam{Title: "Probability Basics", PassingScore: 80, Questions: 10},
		},
	}
}

func geometryTiers() []model.Tier {
	return []model.Tier{
		{
			ID:             1,
			Title:          "Vector Geometry",
			Description:    "Space and direction.",
			RequiredPoints: 0,
			IsLocked:       false,
			Topics: []model.Topic{
				{ID: "vectors-intro", Title: "Vectors & Spaces", Description: "Magnitude and direction", Status: model.TopicActive, Points: 100},
				{ID: "dot-product", Title: "Cosine Similarity", Description: "Measuring similarity", Status: model.TopicLocked, Points: 150},
			},
		},
	}
}

// genericTiers 还未细化的学科共用的占位阶段
func genericTiers() []model.Tier {
	return []model.Tier{
		{
			ID:             1,
			Title:          "Module 1",
			Description:    "Foundation concepts.",
			RequiredPoints: 0,
			IsLocked:       false,
			Topics: []model.Topic{
				{ID: "topic-1", Title: "Introduction", Description: "Key concepts overview", Status: model.TopicActive, Points: 100},
				{ID: "topic-2", Title: "Deep Dive", Description: "Advanced theory", Status: model.TopicLocked, Points: 150},
			},
		},
	}
}

func seedCurricula() []model.Curriculum {
	return []model.Curriculum{
		{Subject: "calculus", Title: "Calculus", Description: "Limits, derivatives and optimization for ML.", Tiers: calculusTiers()},
		{Subject: "probability", Title: "Probability", Description: "Reasoning under uncertainty.", Tiers: probabilityTiers()},
		{Subject: "geometry", Title: "Geometry", Description: "Vectors, spaces and similarity.", Tiers: geometryTiers()},
		{Subject: "linear-algebra", Title: "Linear Algebra", Description: "The language of data.", Tiers: genericTiers()},
	}
}

// seedTopicContents 话题页的静态内容，未收录的话题退回占位内容
func seedTopicContents() map[string]model.TopicContent {
	return map[string]model.TopicContent{
		"limits-intro": {
			ID:    "limits-intro",
			Title: "Introduction to Limits",
			Concept: model.ConceptSection{
				Title:   "Behavior Near a Point",
				Content: "<p>A limit describes the value a function approaches as the input approaches some point, even when the function is undefined there.</p>",
			},
			Video: model.VideoSection{
				Title: "The Essence of Calculus",
				URL:   "https://www.youtube.com/watch?v=WUvTyaaNkzM",
			},
			Coding: model.CodingSection{
				InitialCode: "import numpy as np\n\n# Approach x = 2 from both sides\nfor h in [0.1, 0.01, 0.001]:\n    print((2 + h) ** 2)\n",
			},
		},
		"gradient-descent": {
			ID:    "gradient-descent",
			Title: "Gradient Descent",
			Concept: model.ConceptSection{
				Title:   "Minimizing Loss Functions",
				Content: "<p>Gradient descent walks downhill on the loss surface by taking steps proportional to the negative gradient.</p>",
			},
			Video: model.VideoSection{
				Title: "Gradient descent, how neural networks learn",
				URL:   "https://www.youtube.com/watch?v=IHZwWFHWa-w",
			},
			Coding: model.CodingSection{
				InitialCode: "import numpy as np\n\nx = 10.0\nlr = 0.1\nfor _ in range(20):\n    x -= lr * 2 * x  # d/dx of x^2\nprint(x)\n",
			},
		},
	}
}

// fallbackTopicContent 未收录话题的兜底内容
func fallbackTopicContent(topicID string) model.TopicContent {
	return model.TopicContent{
		ID:    topicID,
		Title: "Topic Not Found",
		Concept: model.ConceptSection{
			Title:   "Not Found",
			Content: "<p>Content not available.</p>",
		},
		Video: model.VideoSection{
			URL: "https://www.youtube.com/watch?v=PFDu9oVAE-g",
		},
		Coding: model.CodingSection{
			InitialCode: "# No content",
		},
	}
}

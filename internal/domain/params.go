package domain

import "strings"

// TopicMode - способ выбора тем в запросе
type TopicMode int

const (
	TopicsAll TopicMode = iota
	TopicsAllFederal
	TopicsList
)

const (
	topicsAllKeyword        = "ALL"
	topicsAllFederalKeyword = "ALL_FEDERAL"
)

// TopicSelection - выбранные в запросе темы: ALL, ALL_FEDERAL или явный список кодов
type TopicSelection struct {
	Mode  TopicMode
	Codes []string
}

// ParseTopicSelection разбирает параметр TOPICS. Пустое значение означает ALL.
func ParseTopicSelection(raw string) TopicSelection {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "", topicsAllKeyword:
		return TopicSelection{Mode: TopicsAll}
	case topicsAllFederalKeyword:
		return TopicSelection{Mode: TopicsAllFederal}
	}

	var codes []string
	for _, part := range strings.Split(raw, ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return TopicSelection{Mode: TopicsList, Codes: codes}
}

// Includes - тема с кодом code выбрана в запросе
func (s TopicSelection) Includes(code string, federal bool) bool {
	switch s.Mode {
	case TopicsAll:
		return true
	case TopicsAllFederal:
		return federal
	default:
		for _, c := range s.Codes {
			if c == code {
				return true
			}
		}
		return false
	}
}

func (s TopicSelection) String() string {
	switch s.Mode {
	case TopicsAll:
		return topicsAllKeyword
	case TopicsAllFederal:
		return topicsAllFederalKeyword
	default:
		return strings.Join(s.Codes, ",")
	}
}

// Params - параметры построения выписки
type Params struct {
	Language     string
	WithGeometry bool
	Topics       TopicSelection
}

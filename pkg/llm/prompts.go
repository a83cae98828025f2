package llm

import (
	"fmt"
	"strings"

	"github.com/channeling-app/reportpipe/pkg/models"
)

// Prompt builders for every pipeline step. The product surface is Korean,
// so instructions and output language are Korean throughout.

// SummaryPrompt asks for a viewer-facing summary of a video transcript.
func SummaryPrompt(title, transcript string) (system, user string) {
	system = "당신은 유튜브 영상 분석 전문가입니다. 자막을 바탕으로 영상의 핵심 내용을 요약합니다."
	user = fmt.Sprintf(
		"다음은 영상 '%s'의 자막입니다.\n\n%s\n\n"+
			"영상의 핵심 내용을 3~5문장으로 요약해 주세요. 요약만 출력하고 다른 설명은 하지 마세요.",
		title, transcript)
	return system, user
}

// ClassifyCommentPrompt asks the model to label one comment with an
// emotion code: 1 positive, 2 negative, 3 neutral, 4 advice or opinion.
// The expected answer is the bare integer.
func ClassifyCommentPrompt(comment string) (system, user string) {
	system = "당신은 유튜브 댓글 감정 분석가입니다. 댓글을 다음 코드로 분류합니다: " +
		"1=긍정, 2=부정, 3=중립, 4=조언/의견. 숫자 하나만 출력하세요."
	user = "다음 댓글을 분류해 주세요.\n\n" + comment
	return system, user
}

// EmotionSummaryPrompt asks for summaries of what viewers of one emotion
// group are saying. The expected answer is a JSON array of summary strings.
func EmotionSummaryPrompt(emotion models.CommentType, joined string) (system, user string) {
	label := map[models.CommentType]string{
		models.CommentPositive: "긍정적인",
		models.CommentNegative: "부정적인",
		models.CommentNeutral:  "중립적인",
		models.CommentAdvice:   "조언/의견",
	}[emotion]

	system = "당신은 유튜브 댓글 분석가입니다. 시청자 반응을 간결하게 요약합니다. " +
		`결과는 JSON 문자열 배열로만 출력하세요. 예: ["요약 문장"]`
	user = fmt.Sprintf(
		"다음은 영상에 달린 %s 댓글들입니다.\n\n%s\n\n"+
			"이 댓글들의 공통된 내용을 1~3개의 요약 문장으로 정리해 주세요.",
		label, joined)
	return system, user
}

// RetentionPrompt asks for an analysis of the worst audience drop-off
// point, given the transcript text around that moment.
func RetentionPrompt(worstRatio float64, contextText string) (system, user string) {
	system = "당신은 유튜브 시청 지속률 분석 전문가입니다. 시청자가 이탈한 구간의 원인을 분석합니다."
	user = fmt.Sprintf(
		"영상 전체 길이 대비 %.0f%% 지점에서 시청자 이탈이 가장 컸습니다.\n"+
			"해당 구간의 자막 내용은 다음과 같습니다.\n\n%s\n\n"+
			"이 구간에서 시청자가 이탈한 원인을 분석하고, 개선 방안을 2~3문장으로 제시해 주세요.",
		worstRatio*100, contextText)
	return system, user
}

// OptimizationPrompt asks for algorithm optimization advice given the
// video's metadata and metric context retrieved from the vector store.
func OptimizationPrompt(title, description, contextText string) (system, user string) {
	system = "당신은 유튜브 알고리즘 최적화 컨설턴트입니다. 제목, 설명, 지표를 바탕으로 노출 개선 방안을 제시합니다."
	user = fmt.Sprintf(
		"영상 제목: %s\n영상 설명: %s\n\n관련 분석 자료:\n%s\n\n"+
			"이 영상이 유튜브 알고리즘에서 더 잘 노출되기 위한 구체적인 개선 방안을 제시해 주세요.",
		title, description, contextText)
	return system, user
}

// RealtimeKeywordsPrompt asks the model to score the realtime trend list
// for content suitability. The expected answer is a JSON array of
// {"keyword": string, "score": number} objects.
func RealtimeKeywordsPrompt(trendKeywords []string) (system, user string) {
	system = "당신은 유튜브 트렌드 분석가입니다. 실시간 트렌드 키워드가 유튜브 콘텐츠 소재로 얼마나 적합한지 " +
		"0~100 점수로 매깁니다. 결과는 JSON 배열로만 출력하세요. " +
		`예: [{"keyword": "예시", "score": 85}]`
	user = fmt.Sprintf(
		"다음 실시간 트렌드 키워드를 평가해 주세요.\n- %s\n\n"+
			"각 키워드의 유튜브 콘텐츠 적합도를 점수와 함께 출력해 주세요.",
		strings.Join(trendKeywords, "\n- "))
	return system, user
}

// ChannelKeywordsPrompt asks the model to pick and score channel-fit
// keywords from the realtime trend list. The expected answer is a JSON
// array of {"keyword": string, "score": number} objects.
func ChannelKeywordsPrompt(concept, target string, trendKeywords []string) (system, user string) {
	system = "당신은 유튜브 콘텐츠 전략가입니다. 실시간 트렌드 키워드 중 채널에 적합한 키워드를 선별하고 " +
		"적합도를 0~100 점수로 매깁니다. 결과는 JSON 배열로만 출력하세요. " +
		`예: [{"keyword": "예시", "score": 85}]`
	user = fmt.Sprintf(
		"채널 컨셉: %s\n타겟 시청자: %s\n\n실시간 트렌드 키워드:\n- %s\n\n"+
			"이 중 채널에 적합한 키워드 5개를 골라 점수와 함께 출력해 주세요.",
		concept, target, strings.Join(trendKeywords, "\n- "))
	return system, user
}

// IdeaPrompt asks for content ideas grounded in the channel concept, the
// curated keywords, and retrieved context. The expected answer is a JSON
// array of {"title", "description", "tags"} objects.
func IdeaPrompt(concept, target string, keywords []string, contextText string) (system, user string) {
	system = "당신은 유튜브 콘텐츠 기획자입니다. 채널 컨셉과 트렌드 키워드를 바탕으로 새 영상 아이디어를 제안합니다. " +
		"결과는 JSON 배열로만 출력하세요. " +
		`예: [{"title": "제목", "description": "설명", "tags": ["태그1", "태그2"]}]`
	user = fmt.Sprintf(
		"채널 컨셉: %s\n타겟 시청자: %s\n추천 키워드: %s\n\n참고 자료:\n%s\n\n"+
			"이 채널에 어울리는 새 영상 아이디어 3개를 제안해 주세요.",
		concept, target, strings.Join(keywords, ", "), contextText)
	return system, user
}

// MeaningChunksPrompt asks the model to regroup fine-grained transcript
// chunks into semantically coherent ones. The expected answer is a JSON
// array of [text, start_sec, end_sec] triplets whose times come from the
// chunk list given in the prompt.
func MeaningChunksPrompt(chunksJSON string) (system, user string) {
	system = "당신은 영상 자막 편집자입니다. 자막 조각들을 의미 단위로 다시 묶습니다. " +
		"결과는 [텍스트, 시작초, 끝초] 형태의 JSON 배열로만 출력하세요. " +
		`예: [["자막 내용", 0.0, 42.5]]`
	user = "다음 자막 조각들을 주제가 바뀌는 지점을 기준으로 다시 묶어 주세요.\n" +
		"각 묶음의 시작초는 첫 조각의 시작, 끝초는 마지막 조각의 끝입니다.\n\n" + chunksJSON
	return system, user
}

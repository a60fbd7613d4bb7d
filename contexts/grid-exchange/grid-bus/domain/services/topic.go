package services

import "regexp"

// Topics are dotted lowercase names; the alphabet also admits dashes,
// underscores, and colons for namespacing.
var topicPattern = regexp.MustCompile(`^[a-z0-9.\-_:]+$`)

const minTopicLength = 2

func ValidTopic(topic string) bool {
	return len(topic) >= minTopicLength && topicPattern.MatchString(topic)
}

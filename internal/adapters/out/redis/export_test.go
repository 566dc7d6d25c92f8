package redis

const PutIfGenerationScript = putIfGenerationScript

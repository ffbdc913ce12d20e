package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Reading %s...":                  "%s を読み込み中...",
		"Reading standard input...":      "標準入力を読み込み中...",
		"Output saved to %s":             "出力を %s に保存しました",

		// Source
		"Estimated %d frames":              "推定 %d フレーム",
		"Frame count unknown (stream input)": "フレーム数は不明です (ストリーム入力)",
		"Collected %d frames":              "%d フレームを収集しました",

		// Encode
		"Encoding %d frames to GIF":        "%d フレームを GIF にエンコード中",
		"GIF encoded: %d bytes":            "GIF エンコード完了: %d バイト",

		// Errors
		"Failed to open input: %s":         "入力のオープンに失敗しました: %s",
		"Failed to encode GIF: %s":         "GIF のエンコードに失敗しました: %s",
		"Failed to write output: %s":       "出力の書き込みに失敗しました: %s",
	})
}

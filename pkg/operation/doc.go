/*
Package operation implements the prefix pipeline.

	+-------------+     +-------------+     +-------------+
	|    tree     | --> |    match    | --> |   rewrite   |
	|   (walk)    |     |  (filter)   |     | (in place)  |
	+-------------+     +-------------+     +-------------+

🔄 Flow:
1. Walks every file below the configured root
2. Keeps paths selected by the include patterns (html, js and css by default)
3. Rewrites @viewport to @-<vendor>-viewport in each kept file
4. Reports each file and a final summary via the log package

⚡ Behavior:
- Strictly sequential, one file at a time
- The first walk or I/O error stops the run; files already rewritten stay rewritten
- Each file is replaced atomically, so a failure never leaves a half written file
*/
package operation

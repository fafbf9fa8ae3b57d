package models

// Prompt templates. These are fmt.Sprintf templates; the argument order
// is documented next to each one.

// ChatNoContextPrompt: question. Used when retrieval returns nothing.
const ChatNoContextPrompt = `You are EduGen, a helpful AI learning assistant.
Answer the following question clearly and educationally:

Question: %s

Note: No document context is available. Answer from your general knowledge.`

// ChatContextPrompt: context, history, question.
const ChatContextPrompt = `You are EduGen, a helpful AI learning assistant.
Use the context below to answer the student's question accurately and clearly.
If the answer is not in the context, say so and answer from general knowledge.

=== DOCUMENT CONTEXT ===
%s

=== CONVERSATION HISTORY ===
%s

=== STUDENT QUESTION ===
%s

=== YOUR ANSWER ===
Provide a clear, well-structured, educational answer:`

// QuizMCQPrompt: count, difficulty, source section, difficulty guidance.
const QuizMCQPrompt = `Based on the following content, generate %d multiple choice questions at %s difficulty level.

%s

Requirements:
- Each question should have exactly 4 options
- Only one correct answer per question
- Include explanations for the correct answers
- Questions should test understanding, not just memorization
- %s

Format your response as a JSON array with this structure:
[
  {
    "question": "Question text here?",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct_answer": "Option A",
    "explanation": "Explanation of why this is correct",
    "type": "multiple_choice"
  }
]

Return only the JSON array, no other text and no code fences.`

// QuizTrueFalsePrompt: count, difficulty, source section, difficulty guidance.
const QuizTrueFalsePrompt = `Based on the following content, generate %d true/false questions at %s difficulty level.

%s

Requirements:
- Mix of true and false statements (roughly 50/50)
- Include explanations for each answer
- %s
- Avoid trick questions or overly obvious answers

Format your response as a JSON array with this structure:
[
  {
    "question": "Statement to evaluate",
    "options": ["True", "False"],
    "correct_answer": "True",
    "explanation": "Explanation of why this is true/false",
    "type": "true_false"
  }
]

Return only the JSON array, no other text and no code fences.`

// FlashcardPrompt: count, source section.
const FlashcardPrompt = `Based on the following educational content, create %d flashcards for key concepts, definitions, and important information.

%s

Requirements:
- Focus on key terms, concepts, definitions, and important facts
- Fronts should be clear, concise questions
- Backs should be informative but not too long (1-3 sentences)
- Include a mix of definition, conceptual, application, and factual questions
- Avoid overly complex or trick questions

Format your response as a JSON array with this structure:
[
  {
    "front": "What is the definition of [key term]?",
    "back": "Clear, concise answer explaining the concept."
  }
]

Return only the JSON array, no other text and no code fences.`

// NotesPrompt: source section, style name, style instruction.
const NotesPrompt = `You are an expert study notes creator for students.

%s

Note Style: %s
Instructions: %s

Create well-structured study notes in Markdown format.
Use proper markdown:
- # for main title
- ## for major sections
- ### for subsections
- **bold** for key terms
- Bullet points where appropriate
- > for important quotes or definitions

Make the notes clear, educational, and exam-ready.
Start directly with the notes content, no code fences:`

// SourceTextSection: document text. Wraps truncated source material
// inside a structured-generation prompt.
const SourceTextSection = `Use the following document content as your source:
=== DOCUMENT CONTENT ===
%s
=== END OF CONTENT ===`

// TopicSection: topic. Used when no source text is supplied.
const TopicSection = `Generate the material about the topic: %s`

package main

// defaultDefinition is the built-in cell-format sheet used when no definition
// file is given: a font list, text and background color choosers, and the
// four border sides, plus a sheet-defaults panel sharing the text chooser.
const defaultDefinition = `
name: cell-format
panels:
  - name: cell
    controls:
      - id: font
        setting: font
        type: list
        title: Font
        options:
          - label: Fonts
            skip: true
          - label: Arial
            value: arial
          - label: Courier New
            value: courier
          - label: Times New Roman
            value: times
          - newcol: true
          - label: Verdana
            value: verdana
          - label: Georgia
            value: georgia
          - label: Custom
            custom: true
          - label: Cancel
            cancel: true
      - id: text_color
        setting: textcolor
        type: colorchooser
        title: Text Color
        sample_width: 20
        sample_height: 6
      - id: bg_color
        setting: bgcolor
        type: colorchooser
        title: Background Color
      - id: border_top
        setting: bt
        type: borderside
        title: Top Border
      - id: border_bottom
        setting: bb
        type: borderside
        title: Bottom Border
      - id: border_left
        setting: bl
        type: borderside
        title: Left Border
      - id: border_right
        setting: br
        type: borderside
        title: Right Border
  - name: sheet
    controls:
      - id: text_color
        setting: defaulttextcolor
        type: colorchooser
        title: Default Text Color
`
